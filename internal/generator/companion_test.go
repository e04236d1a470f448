package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arma75/dtogen/internal/model"
)

func TestPageRequest(t *testing.T) {
	g := New(fixedClock)

	got, err := g.PageRequest(model.NewProject(model.WithTeam("acme"), model.WithProjectName("shop")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "package com.acme.shop.common.dto;\n\npublic class PageRequest {\n"))
	assert.True(t, strings.HasSuffix(got, "    }\n}\n"))
	for _, want := range []string{
		"    private int page = 1;\n\n    private int size = 10;\n\n    private String sort;\n",
		"    public void setPage(int page) {\n        this.page = Math.max(page, 1);\n    }\n",
		"    public void setSize(int size) {\n        this.size = Math.max(size, 1);\n    }\n",
		"    public int getOffset() {\n        return (this.page - 1) * this.size;\n    }\n",
		"    public int getPage() {\n",
		`               "sort=" + sort +` + "\n",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "import ")
	assert.NotContains(t, got, "/**")
}

func TestPageRequestFlags(t *testing.T) {
	g := New(fixedClock)
	p := model.NewProject(model.WithLombok(), model.WithSwagger(), model.WithComments(), model.WithLocale(model.LocaleEnglish))

	got, err := g.PageRequest(p)
	require.NoError(t, err)

	assert.Contains(t, got, "package com.team.demoProject.common.dto;\n\n"+
		"import io.swagger.v3.oas.annotations.media.Schema;\n"+
		"import lombok.Getter;\n"+
		"import lombok.ToString;\n\n"+
		"/**\n * Common paging request DTO\n *\n * @author system\n * @since 2024-03-01\n */\n"+
		"@Getter\n@ToString\n"+
		"@Schema(description = \"Paging request\")\n"+
		"public class PageRequest {\n")
	assert.Contains(t, got, `    @Schema(description = "Page number (starting at 1)", example = "1")`+"\n    private int page = 1;")
	assert.Contains(t, got, "    @Schema(hidden = true)\n    public int getOffset() {")
	// Lombok supplies getters and toString; the clamping setters stay explicit
	assert.NotContains(t, got, "getPage()")
	assert.NotContains(t, got, "toString()")
	assert.Contains(t, got, "public void setPage(int page)")
}

func TestPageResponse(t *testing.T) {
	g := New(fixedClock)

	got, err := g.PageResponse(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "package com.team.demoProject.common.dto;\n\nimport java.util.List;\n\npublic class PageResponse<T> {\n"))
	assert.Contains(t, got, "        this.totalPage = (int) Math.ceil((double) totalCount / Math.max(size, 1));\n")
	assert.Contains(t, got, "    public PageResponse(List<T> data, long totalCount, int size, int page) {\n")
	assert.Contains(t, got, "    public int getTotalPage() {\n        return this.totalPage;\n    }\n")
	assert.True(t, strings.HasSuffix(got, "               \"}\";\n    }\n}\n"))

	got, err = g.PageResponse(model.NewProject(model.WithSwagger(), model.WithComments(), model.WithLombok()))
	require.NoError(t, err)
	assert.Contains(t, got, "import io.swagger.v3.oas.annotations.media.Schema;\nimport java.util.List;\nimport lombok.Getter;\nimport lombok.ToString;\n")
	assert.Contains(t, got, " * @param <T> 데이터 목록의 타입\n * @author system\n")
	assert.Contains(t, got, `example = "100"`)
	assert.Contains(t, got, `@Schema(description = "전체 페이지 수", example = "10")`)
	assert.NotContains(t, got, "getData()")
	sizeDoc := strings.Index(got, "     * @param size 페이지당 출력 개수 (전체 페이지 계산용)\n")
	pageDoc := strings.Index(got, "     * @param page 현재 페이지 번호\n")
	require.NotEqual(t, -1, sizeDoc)
	require.NotEqual(t, -1, pageDoc)
	assert.Less(t, sizeDoc, pageDoc, "constructor params documented as (data, totalCount, size, page)")
}

func TestCompanionsIgnoreTable(t *testing.T) {
	g := New(fixedClock)
	withTable := model.NewProject(model.WithTableDef(userInfoTable()), model.WithDateRange())
	without := model.NewProject()

	for name, render := range map[string]func(*model.Project) (string, error){
		"request":  g.PageRequest,
		"response": g.PageResponse,
	} {
		t.Run(name, func(t *testing.T) {
			a, err := render(withTable)
			require.NoError(t, err)
			b, err := render(without)
			require.NoError(t, err)
			assert.Equal(t, b, a)
			assert.NotContains(t, a, "userName")
			assert.NotNil(t, withTable.Table)
		})
	}
}
