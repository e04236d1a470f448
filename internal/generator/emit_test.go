package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arma75/dtogen/internal/model"
)

func field(opts ...model.ColumnOption) model.ProjectedField {
	return ProjectColumn(model.NewColumn("user_name", opts...))
}

func TestFieldDeclaration(t *testing.T) {
	tests := []struct {
		name string
		f    model.ProjectedField
		opts []model.ProjectOption
		want string
	}{
		{
			name: "plain",
			f:    field(),
			want: "    private String userName;",
		},
		{
			name: "temporal",
			f:    field(model.WithType("TIME")),
			want: "    @DateTimeFormat(pattern = \"HH:mm:ss\")\n    private LocalTime userName;",
		},
		{
			name: "comment and swagger",
			f:    field(model.WithComment(`say "hi"`)),
			opts: []model.ProjectOption{model.WithComments(), model.WithSwagger()},
			want: "    /**\n     * say \"hi\"\n     */\n    @Schema(description = \"say \\\"hi\\\"\")\n    private String userName;",
		},
		{
			name: "comment cannot close javadoc",
			f:    field(model.WithComment("a */ b")),
			opts: []model.ProjectOption{model.WithComments()},
			want: "    /**\n     * a *&#47; b\n     */\n    private String userName;",
		},
		{
			name: "unmapped type",
			f:    field(model.WithType("GEOMETRY")),
			want: "    private Object userName;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldDeclaration(tt.f, model.NewProject(tt.opts...)))
		})
	}
}

func TestAccessors(t *testing.T) {
	f := field(model.WithComment("이름"))
	p := model.NewProject()

	assert.Equal(t, "    public String getUserName() {\n        return this.userName;\n    }", Getter(f, p))
	assert.Equal(t, "    public void setUserName(String userName) {\n        this.userName = userName;\n    }", Setter(f, p))

	p.WriteComment = true
	assert.Equal(t,
		"    /**\n     * 이름 값을 반환합니다.\n     *\n     * @return 이름\n     */\n    public String getUserName() {\n        return this.userName;\n    }",
		Getter(f, p))
	assert.Contains(t, Setter(f, p), "     * @param userName 이름\n")
}

func TestToString(t *testing.T) {
	p := model.NewProject()
	fields := []model.ProjectedField{
		ProjectColumn(model.NewColumn("a")),
		ProjectColumn(model.NewColumn("b_c")),
	}
	want := strings.Join([]string{
		"    @Override",
		"    public String toString() {",
		`        return "XDTO{" +`,
		`               "a=" + a + ", " +`,
		`               "bC=" + bC +`,
		`               "}";`,
		"    }",
	}, "\n")
	assert.Equal(t, want, ToString("XDTO", fields, p))

	single := ToString("X", fields[:1], p)
	assert.Contains(t, single, `"a=" + a +`+"\n")
	assert.NotContains(t, single, `", "`)

	empty := ToString("X", nil, p)
	assert.Contains(t, empty, `return "X{" +`+"\n"+`               "}";`)
}

func TestValidationChecks(t *testing.T) {
	tests := []struct {
		name string
		f    model.ProjectedField
		want []string
	}{
		{
			name: "optional unbounded",
			f:    field(model.Unbounded()),
		},
		{
			name: "optional bounded string",
			f:    field(model.WithLength(20)),
			want: []string{
				"        if (userName != null && userName.length() > 20) {",
				`            throw new IllegalArgumentException("userName length cannot exceed 20.");`,
				"        }",
			},
		},
		{
			name: "required string",
			f:    field(model.NotNull(), model.Unbounded()),
			want: []string{
				"        if (!isPatch && (userName == null || userName.isBlank())) {",
				`            throw new IllegalArgumentException("userName is required.");`,
				"        }",
			},
		},
		{
			name: "required non-string ignores length",
			f:    field(model.WithType("INT"), model.NotNull(), model.WithLength(5)),
			want: []string{
				"        if (!isPatch && userName == null) {",
				`            throw new IllegalArgumentException("userName is required.");`,
				"        }",
			},
		},
		{
			name: "auto increase never validated",
			f:    field(model.NotNull(), model.AutoIncrease(), model.WithLength(5)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, strings.Join(tt.want, "\n"), ValidationChecks(tt.f))
		})
	}
}

func TestValidateMethod(t *testing.T) {
	p := model.NewProject()
	none := []model.ProjectedField{
		field(model.Unbounded()),
		ProjectColumn(model.NewColumn("id", model.WithType("BIGINT"), model.AutoIncrease(), model.NotNull(), model.PrimaryKey())),
		ProjectColumn(model.NewColumn("at", model.WithType("DATE"))),
	}
	assert.Empty(t, ValidateMethod(none, p))

	some := append(none, field(model.NotNull(), model.WithLength(3)), ProjectColumn(model.NewColumn("qty", model.WithType("INT"), model.NotNull())))
	got := ValidateMethod(some, p)
	assert.True(t, strings.HasPrefix(got, "    public void validate(boolean isPatch) {\n"))
	assert.True(t, strings.HasSuffix(got, "\n    }"))
	assert.Equal(t, 3, strings.Count(got, "throw new IllegalArgumentException"))
	// checks for different fields are separated by one blank line
	assert.Contains(t, got, "        }\n\n        if (!isPatch && qty == null) {")

	p.WriteComment = true
	p.Locale = model.LocaleEnglish
	assert.Contains(t, ValidateMethod(some, p), "    /**\n     * Validates this DTO.\n     *\n     * @param isPatch")
}

func TestClassComment(t *testing.T) {
	p := model.NewProject(model.WithTableDef(model.NewTable("orders", "주문")))
	want := "/**\n * 주문 DTO\n *\n * @author system\n * @since 2024-01-02\n */"
	assert.Equal(t, want, ClassComment(p, "2024-01-02"))

	p.Author = "lee"
	assert.Contains(t, ClassComment(p, "d"), " * @author lee\n")
}
