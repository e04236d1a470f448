package generator

import (
	"fmt"

	"github.com/Arma75/dtogen/internal/model"
)

// Messages holds every human-language string the generator writes into Java
// source. Format strings take the column or table label.
type Messages struct {
	StartSuffix string
	EndSuffix   string

	ClassDoc    string
	ClassSchema string
	GetterDoc   string
	SetterDoc   string

	ToStringDoc    []string
	ToStringReturn string
	ValidateDoc    []string

	PageRequestDoc    string
	PageRequestSchema string
	PageDoc           string
	SizeDoc           string
	SortDoc           string
	SetPageDoc        string
	SetSizeDoc        string
	SetSortDoc        string
	OffsetDoc         string
	OffsetReturn      string
	GetPageDoc        string
	GetSizeDoc        string
	GetSortDoc        string

	PageResponseDoc    string
	PageResponseSchema string
	TypeParamDoc       string
	DataDoc            string
	TotalCountDoc      string
	TotalPageDoc       string
	CurrentPageDoc     string
	ConstructorDoc     string
	DataParam          string
	SizeParam          string
	GetDataDoc         string
	GetTotalCountDoc   string
	GetTotalPageDoc    string
	GetCurrentPageDoc  string
}

var korean = Messages{
	StartSuffix: " 시작일",
	EndSuffix:   " 종료일",

	ClassDoc:    "%s DTO",
	ClassSchema: "%s 정보",
	GetterDoc:   "%s 값을 반환합니다.",
	SetterDoc:   "%s 값을 설정합니다.",

	ToStringDoc: []string{
		"객체의 상태를 문자열로 반환합니다.",
		"주요 필드 값을 포함하여 디버깅 및 로깅 시에 활용됩니다.",
	},
	ToStringReturn: "객체 상태 문자열",
	ValidateDoc: []string{
		"DTO의 유효성을 검증합니다.",
		"",
		"@param isPatch 패치(Partial Update) 여부.",
		"true일 경우 필수 값 체크를 건너뛰고 입력된 값의 길이만 검증합니다.",
		"",
		"@throws IllegalArgumentException 유효성 검증 실패 시 발생",
	},

	PageRequestDoc:    "공통 페이징 요청 DTO",
	PageRequestSchema: "페이징 요청 정보",
	PageDoc:           "페이지 번호 (1부터 시작)",
	SizeDoc:           "페이지당 출력 개수",
	SortDoc:           "정렬 조건 (필드명,ASC|DESC;필드명,ASC|DESC)",
	SetPageDoc:        "페이지 번호를 설정합니다. 1보다 작은 값이 입력되면 1로 고정됩니다.",
	SetSizeDoc:        "페이지당 출력 개수를 설정합니다. 1보다 작은 값이 입력되면 1로 고정됩니다.",
	SetSortDoc:        "정렬 조건을 설정합니다.",
	OffsetDoc:         "DB 조회 시 사용할 Offset 값을 반환합니다.",
	OffsetReturn:      "조회 시작 위치 (0부터 시작)",
	GetPageDoc:        "현재 페이지 번호를 반환합니다.",
	GetSizeDoc:        "페이지당 출력 개수를 반환합니다.",
	GetSortDoc:        "정렬 조건을 반환합니다.",

	PageResponseDoc:    "공통 페이징 응답 DTO",
	PageResponseSchema: "페이징 응답 정보",
	TypeParamDoc:       "데이터 목록의 타입",
	DataDoc:            "데이터 목록",
	TotalCountDoc:      "전체 데이터 개수",
	TotalPageDoc:       "전체 페이지 수",
	CurrentPageDoc:     "현재 페이지 번호",
	ConstructorDoc:     "PageResponse 생성자",
	DataParam:          "현재 페이지의 데이터 목록",
	SizeParam:          "페이지당 출력 개수 (전체 페이지 계산용)",
	GetDataDoc:         "데이터 목록을 반환합니다.",
	GetTotalCountDoc:   "전체 데이터 개수를 반환합니다.",
	GetTotalPageDoc:    "전체 페이지 수를 반환합니다.",
	GetCurrentPageDoc:  "현재 페이지 번호를 반환합니다.",
}

var english = Messages{
	StartSuffix: " start date",
	EndSuffix:   " end date",

	ClassDoc:    "%s DTO",
	ClassSchema: "%s information",
	GetterDoc:   "Returns the %s.",
	SetterDoc:   "Sets the %s.",

	ToStringDoc: []string{
		"Returns the state of this object as a string.",
		"Includes the main field values for debugging and logging.",
	},
	ToStringReturn: "object state string",
	ValidateDoc: []string{
		"Validates this DTO.",
		"",
		"@param isPatch whether this is a partial update (PATCH).",
		"When true, required checks are skipped and only lengths are validated.",
		"",
		"@throws IllegalArgumentException if validation fails",
	},

	PageRequestDoc:    "Common paging request DTO",
	PageRequestSchema: "Paging request",
	PageDoc:           "Page number (starting at 1)",
	SizeDoc:           "Items per page",
	SortDoc:           "Sort order (field,ASC|DESC;field,ASC|DESC)",
	SetPageDoc:        "Sets the page number. Values below 1 are raised to 1.",
	SetSizeDoc:        "Sets the page size. Values below 1 are raised to 1.",
	SetSortDoc:        "Sets the sort order.",
	OffsetDoc:         "Returns the row offset to query from.",
	OffsetReturn:      "zero-based start position",
	GetPageDoc:        "Returns the current page number.",
	GetSizeDoc:        "Returns the page size.",
	GetSortDoc:        "Returns the sort order.",

	PageResponseDoc:    "Common paging response DTO",
	PageResponseSchema: "Paging response",
	TypeParamDoc:       "element type of the data list",
	DataDoc:            "Data list",
	TotalCountDoc:      "Total number of items",
	TotalPageDoc:       "Total number of pages",
	CurrentPageDoc:     "Current page number",
	ConstructorDoc:     "Creates a PageResponse",
	DataParam:          "data on the current page",
	SizeParam:          "items per page (used to compute the page count)",
	GetDataDoc:         "Returns the data list.",
	GetTotalCountDoc:   "Returns the total number of items.",
	GetTotalPageDoc:    "Returns the total number of pages.",
	GetCurrentPageDoc:  "Returns the current page number.",
}

// MessagesFor returns the catalog for l; anything but English is Korean.
func MessagesFor(l model.Locale) Messages {
	if l == model.LocaleEnglish {
		return english
	}
	return korean
}

func (m Messages) classDoc(label string) string { return fmt.Sprintf(m.ClassDoc, label) }
func (m Messages) classSchema(label string) string { return fmt.Sprintf(m.ClassSchema, label) }
func (m Messages) getterDoc(label string) string { return fmt.Sprintf(m.GetterDoc, label) }
func (m Messages) setterDoc(label string) string { return fmt.Sprintf(m.SetterDoc, label) }
