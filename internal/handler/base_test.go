package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/category-service/internal/errs"
	"github.com/deppfellow/category-service/internal/model"
	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestHandle_WritesEnvelope(t *testing.T) {
	now := time.Now().UTC()
	h := Handle(Handler{}, func(c echo.Context, req *category.CreateCategoryRequest) (category.Response, error) {
		return category.Response{ID: 1, Name: req.Name, CreatedAt: now, UpdatedAt: now}, nil
	}, http.StatusOK, "done", newRequest[category.CreateCategoryRequest])

	c, rec := newContext(http.MethodPost, "/", `{"name":"books"}`)
	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var env model.Envelope[category.Response]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "done", env.Message)
	assert.Equal(t, "books", env.Data.Name)
}

func TestHandle_InvalidInputSkipsEndpoint(t *testing.T) {
	called := false
	h := Handle(Handler{}, func(c echo.Context, req *category.CreateCategoryRequest) (category.Response, error) {
		called = true
		return category.Response{}, nil
	}, http.StatusOK, "done", newRequest[category.CreateCategoryRequest])

	c, rec := newContext(http.MethodPost, "/", `{"name":""}`)
	httpErr := requireHTTPError(t, h(c), http.StatusBadRequest)

	assert.False(t, called)
	assert.Zero(t, rec.Body.Len())
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandle_InvalidOutputIsServerError(t *testing.T) {
	h := Handle(Handler{}, func(c echo.Context, req *category.CreateCategoryRequest) (category.Response, error) {
		// Zero id and timestamps break the response schema.
		return category.Response{Name: req.Name}, nil
	}, http.StatusOK, "done", newRequest[category.CreateCategoryRequest])

	c, rec := newContext(http.MethodPost, "/", `{"name":"books"}`)
	httpErr := requireHTTPError(t, h(c), http.StatusInternalServerError)

	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestHandle_EndpointErrorPassesThrough(t *testing.T) {
	want := errs.NewForbiddenError("no", true)
	h := Handle(Handler{}, func(c echo.Context, req *category.ListCategoriesRequest) (category.ListResponse, error) {
		return nil, want
	}, http.StatusOK, "done", newRequest[category.ListCategoriesRequest])

	c, _ := newContext(http.MethodGet, "/", "")
	assert.Same(t, want, h(c))
}

func TestHandle_FreshRequestPerCall(t *testing.T) {
	var seen []int
	h := Handle(Handler{}, func(c echo.Context, req *category.ListCategoriesPaginatedRequest) (category.PageResponse, error) {
		seen = append(seen, req.Limit)
		return category.NewPageResponse(nil, 0, req.Page, req.Limit), nil
	}, http.StatusOK, "done", category.NewListCategoriesPaginatedRequest)

	c, _ := newContext(http.MethodGet, "/?limit=3", "")
	require.NoError(t, h(c))

	c, _ = newContext(http.MethodGet, "/", "")
	require.NoError(t, h(c))

	assert.Equal(t, []int{3, category.DefaultLimit}, seen)
}
