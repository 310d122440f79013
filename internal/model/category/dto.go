package category

import (
	"time"

	"github.com/deppfellow/category-service/internal/model"
	"github.com/deppfellow/category-service/internal/validation"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ------------------------------------------------------------

type ListCategoriesRequest struct{}

func (r *ListCategoriesRequest) Validate() error {
	return nil
}

// ------------------------------------------------------------

type ListCategoriesPaginatedRequest struct {
	Page  int `query:"page" validate:"gt=0,lte=10000"`
	Limit int `query:"limit" validate:"gt=0,lte=10000"`
}

// NewListCategoriesPaginatedRequest returns a request carrying the default page and limit.
func NewListCategoriesPaginatedRequest() *ListCategoriesPaginatedRequest {
	return &ListCategoriesPaginatedRequest{Page: DefaultPage, Limit: DefaultLimit}
}

func (r *ListCategoriesPaginatedRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

// ID is only ever read from the path; json:"-" keeps a body "id" from overriding it.
// Any integer is accepted: ids that match no row, including zero and
// negatives, answer not found.
type GetCategoryByIDRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *GetCategoryByIDRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=256"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type UpdateCategoryRequest struct {
	ID   int    `param:"id" json:"-"`
	Name string `json:"name" validate:"required,min=1,max=256"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type DeleteCategoryRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *DeleteCategoryRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

// Response is the wire shape of a category. Columns not listed here never leave the service.
//
// Lowercasing can add a rune ("İ" becomes "i̇"), so a stored name may be up
// to twice the 256 runes accepted on input.
type Response struct {
	ID        int       `json:"id" validate:"gt=0"`
	Name      string    `json:"name" validate:"required,max=512"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

func NewResponse(c *Category) Response {
	return Response{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r Response) Validate() error {
	return validation.Struct(r)
}

// ListResponse is the unpaged list of categories.
type ListResponse []Response

func NewListResponse(categories []Category) ListResponse {
	out := make(ListResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewResponse(&categories[i]))
	}
	return out
}

func (l ListResponse) Validate() error {
	for _, r := range l {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PageResponse is one page of categories.
type PageResponse struct {
	model.Paginated[Response]
}

func NewPageResponse(categories []Category, totalItem, page, limit int) PageResponse {
	return PageResponse{model.NewPaginated([]Response(NewListResponse(categories)), totalItem, page, limit)}
}

func (p PageResponse) Validate() error {
	if err := validation.Struct(p.Paginated); err != nil {
		return err
	}
	if len(p.Items) > p.Limit {
		return validation.CustomValidationErrors{{Field: "items", Message: "exceeds limit"}}
	}
	return ListResponse(p.Items).Validate()
}
