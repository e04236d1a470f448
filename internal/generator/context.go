package generator

import (
	"github.com/Arma75/dtogen/internal/model"
)

// Context is the flattened view of a project the DTO templates render.
type Context struct {
	PackageName       string
	ClassName         string
	ClassComment      string
	SchemaDescription string
	Author            string
	Today             string

	WriteComment    bool
	UseLombok       bool
	UseSwagger      bool
	IsSearchRequest bool
	IsSaveRequest   bool
	HasValidation   bool

	Imports       []string
	LombokMarkers []string
	Fields        []FieldContext
	// Validated is the subset of Fields that validate() checks.
	Validated []FieldContext

	Msg Messages
}

type FieldContext struct {
	FieldName  string
	PascalName string
	JavaType   string
	Comment    string
	DateFormat string
	GetterDoc  string
	SetterDoc  string

	IsString      bool
	IsTemporal    bool
	Required      bool
	LengthBounded bool
	Length        int
	Last          bool
}

// NewContext flattens p and its expanded fields. p must carry a table.
func NewContext(p *model.Project, fields []model.ProjectedField, today string) Context {
	msg := MessagesFor(p.Locale)

	var extra []string
	if p.Type == model.KindSearchRequest {
		extra = append(extra, CommonPackage(p)+".PageRequest")
	}

	ctx := Context{
		PackageName:       PackageName(p),
		ClassName:         ClassName(p),
		ClassComment:      msg.classDoc(p.Table.Label()),
		SchemaDescription: msg.classSchema(p.Table.Label()),
		Author:            p.AuthorOrDefault(),
		Today:             today,
		WriteComment:      p.WriteComment,
		UseLombok:         p.UseLombok,
		UseSwagger:        p.UseSwagger,
		IsSearchRequest:   p.Type == model.KindSearchRequest,
		IsSaveRequest:     p.Type == model.KindSaveRequest,
		HasValidation:     hasValidation(fields),
		Imports:           CollectImports(fields, p, extra...),
		LombokMarkers:     lombokMarkers,
		Fields:            make([]FieldContext, 0, len(fields)),
		Msg:               msg,
	}
	for i, f := range fields {
		fc := FieldContext{
			FieldName:     f.FieldName,
			PascalName:    f.AccessorName,
			JavaType:      f.JavaType,
			Comment:       f.Comment,
			DateFormat:    f.DateFormat,
			GetterDoc:     msg.getterDoc(f.Comment),
			SetterDoc:     msg.setterDoc(f.Comment),
			IsString:      f.IsString(),
			IsTemporal:    f.IsTemporal(),
			Required:      f.Required(),
			LengthBounded: f.LengthBounded(),
			Length:        f.Column.Length,
			Last:          i == len(fields)-1,
		}
		ctx.Fields = append(ctx.Fields, fc)
		if f.NeedsValidation() {
			ctx.Validated = append(ctx.Validated, fc)
		}
	}
	return ctx
}
