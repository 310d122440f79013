package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/category-service/internal/errs"
	"github.com/deppfellow/category-service/internal/model"
	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/deppfellow/category-service/internal/sqlerr"
	"github.com/rs/zerolog"
)

const (
	CategoryNotFoundCode      = "CATEGORY_NOT_FOUND"
	CategoryAlreadyExistsCode = "CATEGORY_ALREADY_EXISTS"
	CategoryNameTakenMessage  = "this category name already exists"
)

// CategoryRepository is the datastore the category service depends on.
//
// Missing rows must surface as sql.ErrNoRows and unique violations as
// driver errors recognized by sqlerr.IsUniqueViolation.
type CategoryRepository interface {
	List(ctx context.Context) ([]category.Category, error)
	ListPaged(ctx context.Context, offset, limit int) ([]category.Category, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*category.Category, error)
	Create(ctx context.Context, name string) (*category.Category, error)
	Update(ctx context.Context, id int, name string) (*category.Category, error)
	Delete(ctx context.Context, id int) (*category.Category, error)
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListAll returns every category, newest first.
func (s *CategoryService) ListAll(ctx context.Context) ([]category.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListPaged returns one page of categories. A page past the end is empty, not an error.
func (s *CategoryService) ListPaged(ctx context.Context, page, limit int) (model.Paginated[category.Category], error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return model.Paginated[category.Category]{}, err
	}

	items, err := s.repo.ListPaged(ctx, model.Offset(page, limit), limit)
	if err != nil {
		return model.Paginated[category.Category]{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("page", page).
		Int("limit", limit).
		Int("total_item", total).
		Int("returned", len(items)).
		Msg("listed category page")

	return model.NewPaginated(items, total, page, limit), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*category.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return c, nil
}

// Create stores a category under its normalized name.
func (s *CategoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	name := category.NormalizeName(req.Name)

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, translate(err, 0)
	}

	zerolog.Ctx(ctx).Info().
		Int("category_id", c.ID).
		Str("category_name", c.Name).
		Msg("category created")

	return c, nil
}

// Update renames a category, normalizing and checking uniqueness the same way as Create.
func (s *CategoryService) Update(ctx context.Context, req *category.UpdateCategoryRequest) (*category.Category, error) {
	name := category.NormalizeName(req.Name)

	c, err := s.repo.Update(ctx, req.ID, name)
	if err != nil {
		return nil, translate(err, req.ID)
	}

	zerolog.Ctx(ctx).Info().
		Int("category_id", c.ID).
		Str("category_name", c.Name).
		Msg("category updated")

	return c, nil
}

// Delete removes a category and returns it as it was before deletion.
func (s *CategoryService) Delete(ctx context.Context, id int) (*category.Category, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}

	zerolog.Ctx(ctx).Info().
		Int("category_id", c.ID).
		Msg("category deleted")

	return c, nil
}

// translate maps the two known datastore conditions to typed errors and
// passes anything else through unchanged.
func translate(err error, id int) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		code := CategoryNotFoundCode
		return errs.NewNotFoundError(fmt.Sprintf("Category with id %d not found", id), true, &code)

	case sqlerr.IsUniqueViolation(err):
		code := CategoryAlreadyExistsCode
		return errs.NewUnprocessableEntityError("Category already exists", true, &code, []errs.FieldError{{
			Field:   "name",
			Message: CategoryNameTakenMessage,
		}})

	default:
		return err
	}
}
