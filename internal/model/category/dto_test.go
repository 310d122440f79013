package category

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "electronics", NormalizeName("ELECTRONICS"))
	assert.Equal(t, "đồ gia dụng", NormalizeName("ĐỒ Gia Dụng"))
	assert.Equal(t, "i\u0307", NormalizeName("İ"))
}

func TestResponse_AcceptsExpandedName(t *testing.T) {
	raw := strings.Repeat("İ", 256)
	require.NoError(t, (&CreateCategoryRequest{Name: raw}).Validate())

	c := sampleCategory(1, NormalizeName(raw))
	assert.Equal(t, 512, utf8.RuneCountInString(c.Name))
	assert.NoError(t, NewResponse(&c).Validate())
}

func TestCreateCategoryRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateCategoryRequest{Name: "a"}).Validate())
	assert.NoError(t, (&CreateCategoryRequest{Name: strings.Repeat("é", 256)}).Validate())
	assert.Error(t, (&CreateCategoryRequest{Name: ""}).Validate())
	assert.Error(t, (&CreateCategoryRequest{Name: strings.Repeat("a", 257)}).Validate())
}

func TestListCategoriesPaginatedRequest_Validate(t *testing.T) {
	req := NewListCategoriesPaginatedRequest()
	assert.Equal(t, DefaultPage, req.Page)
	assert.Equal(t, DefaultLimit, req.Limit)
	assert.NoError(t, req.Validate())

	assert.NoError(t, (&ListCategoriesPaginatedRequest{Page: 10000, Limit: 10000}).Validate())
	assert.Error(t, (&ListCategoriesPaginatedRequest{Page: 0, Limit: 10}).Validate())
	assert.Error(t, (&ListCategoriesPaginatedRequest{Page: 1, Limit: 10001}).Validate())
	assert.Error(t, (&ListCategoriesPaginatedRequest{Page: -1, Limit: 10}).Validate())
}

func TestIDRequests_Validate(t *testing.T) {
	assert.NoError(t, (&GetCategoryByIDRequest{ID: 1}).Validate())
	assert.NoError(t, (&GetCategoryByIDRequest{ID: 0}).Validate())
	assert.NoError(t, (&DeleteCategoryRequest{ID: -3}).Validate())
	assert.Error(t, (&UpdateCategoryRequest{ID: 1}).Validate())
	assert.NoError(t, (&UpdateCategoryRequest{ID: 1, Name: "books"}).Validate())
}

func sampleCategory(id int, name string) Category {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func TestResponse_WireShape(t *testing.T) {
	c := sampleCategory(3, "books")

	body, err := json.Marshal(NewResponse(&c))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"name":"books","createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"}`, string(body))
	assert.NoError(t, NewResponse(&c).Validate())
}

func TestResponse_ValidateRejectsZeroRow(t *testing.T) {
	assert.Error(t, NewResponse(&Category{}).Validate())
}

func TestPageResponse(t *testing.T) {
	page := NewPageResponse([]Category{sampleCategory(2, "b"), sampleCategory(1, "a")}, 3, 1, 2)

	assert.Equal(t, 2, page.TotalPage)
	assert.Len(t, page.Items, 2)
	require.NoError(t, page.Validate())

	body, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.EqualValues(t, 3, decoded["totalItem"])
	assert.EqualValues(t, 2, decoded["totalPage"])
	assert.Len(t, decoded["items"], 2)
}

func TestPageResponse_ValidateRejectsOverfullPage(t *testing.T) {
	page := NewPageResponse([]Category{sampleCategory(2, "b"), sampleCategory(1, "a")}, 2, 1, 1)
	assert.Error(t, page.Validate())
}
