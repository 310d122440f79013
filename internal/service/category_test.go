package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/category-service/internal/errs"
	"github.com/deppfellow/category-service/internal/model"
	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/deppfellow/category-service/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*CategoryService, *repositorytest.CategoryRepository) {
	t.Helper()
	repo := repositorytest.NewCategoryRepository()
	return NewCategoryService(repo), repo
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func seed(t *testing.T, svc *CategoryService, names ...string) []*category.Category {
	t.Helper()
	out := make([]*category.Category, 0, len(names))
	for _, name := range names {
		c, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestCategoryService_CreateLowercasesName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Electronics", "a", "MiXeD CaSe", strings.Repeat("Z", 256)} {
		created, err := svc.Create(ctx, &category.CreateCategoryRequest{Name: name})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), got.Name)
		assert.False(t, got.CreatedAt.IsZero())
	}
}

func TestCategoryService_CreateConflictIgnoresCase(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc, "Electronics")

	_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "ELECTRONICS"})
	httpErr := requireStatus(t, err, http.StatusUnprocessableEntity)

	assert.Equal(t, CategoryAlreadyExistsCode, httpErr.Code)
	assert.Equal(t, []errs.FieldError{{Field: "name", Message: CategoryNameTakenMessage}}, httpErr.Errors)
}

func TestCategoryService_ListAllNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc, "a", "b", "c")

	categories, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})
}

func TestCategoryService_ListPaged(t *testing.T) {
	svc, _ := newTestService(t)
	names := make([]string, 0, 23)
	for i := range 23 {
		names = append(names, fmt.Sprintf("category-%02d", i))
	}
	seed(t, svc, names...)

	for _, limit := range []int{1, 2, 5, 10, 23, 50} {
		totalPage := model.TotalPages(23, limit)
		seen := 0

		for page := 1; page <= totalPage+1; page++ {
			result, err := svc.ListPaged(context.Background(), page, limit)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(result.Items), limit)
			assert.Equal(t, 23, result.TotalItem)
			assert.Equal(t, totalPage, result.TotalPage)
			assert.Equal(t, page, result.Page)
			assert.Equal(t, limit, result.Limit)

			for i := 1; i < len(result.Items); i++ {
				assert.False(t, result.Items[i].CreatedAt.After(result.Items[i-1].CreatedAt))
			}
			seen += len(result.Items)

			if page > totalPage {
				assert.Empty(t, result.Items)
				assert.NotNil(t, result.Items)
			}
		}

		assert.Equal(t, 23, seen, "limit=%d", limit)
	}
}

func TestCategoryService_ListPagedEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.ListPaged(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalItem)
	assert.Equal(t, 0, result.TotalPage)
	assert.Empty(t, result.Items)
}

func TestCategoryService_GetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.GetByID(context.Background(), 42)
	assert.Nil(t, got)

	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, CategoryNotFoundCode, httpErr.Code)
}

func TestCategoryService_Update(t *testing.T) {
	svc, _ := newTestService(t)
	created := seed(t, svc, "books", "garden")

	t.Run("renames and normalizes", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), &category.UpdateCategoryRequest{ID: created[0].ID, Name: "Comics"})
		require.NoError(t, err)
		assert.Equal(t, "comics", updated.Name)
		assert.True(t, updated.UpdatedAt.After(created[0].UpdatedAt))
		assert.Equal(t, created[0].CreatedAt, updated.CreatedAt)
	})

	t.Run("keeping its own name is fine", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &category.UpdateCategoryRequest{ID: created[1].ID, Name: "GARDEN"})
		require.NoError(t, err)
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &category.UpdateCategoryRequest{ID: created[1].ID, Name: "COMICS"})
		httpErr := requireStatus(t, err, http.StatusUnprocessableEntity)
		assert.Equal(t, "name", httpErr.Errors[0].Field)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &category.UpdateCategoryRequest{ID: 999, Name: "x"})
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestCategoryService_DeleteThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	created := seed(t, svc, "books")[0]

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *deleted)

	_, err = svc.GetByID(context.Background(), created.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Delete(context.Background(), created.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestCategoryService_PassesThroughUnknownErrors(t *testing.T) {
	svc, repo := newTestService(t)
	boom := errors.New("connection refused")
	repo.Err = boom

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = svc.ListPaged(context.Background(), 1, 10)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, boom)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}
