package handler

import (
	"net/http"

	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/deppfellow/category-service/internal/server"
	"github.com/deppfellow/category-service/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	MessageCategoryListFetched = "Category list fetched successfully"
	MessageCategoryFetched     = "Category fetched successfully"
	MessageCategoryCreated     = "Category created successfully"
	MessageCategoryUpdated     = "Category updated successfully"
	MessageCategoryDeleted     = "Category deleted successfully"
)

type CategoryHandler struct {
	Handler
	categoryService *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:         NewHandler(s),
		categoryService: categoryService,
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, MessageCategoryListFetched, newRequest[category.ListCategoriesRequest])
}

// ListPaginated handles GET /categories/pagination.
func (h *CategoryHandler) ListPaginated() echo.HandlerFunc {
	return Handle(h.Handler, h.listPaginated, http.StatusOK, MessageCategoryListFetched, category.NewListCategoriesPaginatedRequest)
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, MessageCategoryFetched, newRequest[category.GetCategoryByIDRequest])
}

// Create handles POST /categories.
func (h *CategoryHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusOK, MessageCategoryCreated, newRequest[category.CreateCategoryRequest])
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, MessageCategoryUpdated, newRequest[category.UpdateCategoryRequest])
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.delete, http.StatusOK, MessageCategoryDeleted, newRequest[category.DeleteCategoryRequest])
}

func (h *CategoryHandler) list(c echo.Context, _ *category.ListCategoriesRequest) (category.ListResponse, error) {
	categories, err := h.categoryService.ListAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return category.NewListResponse(categories), nil
}

func (h *CategoryHandler) listPaginated(c echo.Context, req *category.ListCategoriesPaginatedRequest) (category.PageResponse, error) {
	page, err := h.categoryService.ListPaged(c.Request().Context(), req.Page, req.Limit)
	if err != nil {
		return category.PageResponse{}, err
	}
	return category.NewPageResponse(page.Items, page.TotalItem, page.Page, page.Limit), nil
}

func (h *CategoryHandler) get(c echo.Context, req *category.GetCategoryByIDRequest) (category.Response, error) {
	found, err := h.categoryService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return category.Response{}, err
	}
	return category.NewResponse(found), nil
}

func (h *CategoryHandler) create(c echo.Context, req *category.CreateCategoryRequest) (category.Response, error) {
	created, err := h.categoryService.Create(c.Request().Context(), req)
	if err != nil {
		return category.Response{}, err
	}
	return category.NewResponse(created), nil
}

func (h *CategoryHandler) update(c echo.Context, req *category.UpdateCategoryRequest) (category.Response, error) {
	updated, err := h.categoryService.Update(c.Request().Context(), req)
	if err != nil {
		return category.Response{}, err
	}
	return category.NewResponse(updated), nil
}

func (h *CategoryHandler) delete(c echo.Context, req *category.DeleteCategoryRequest) (category.Response, error) {
	deleted, err := h.categoryService.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return category.Response{}, err
	}
	return category.NewResponse(deleted), nil
}
