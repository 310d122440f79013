// Package repositorytest provides in-memory repositories for tests.
//
// They report failures with the same error values the PostgreSQL
// repositories produce: wrapped sql.ErrNoRows for missing rows and a
// *pgconn.PgError with SQLSTATE 23505 for duplicate names.
package repositorytest

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/jackc/pgx/v5/pgconn"
)

type CategoryRepository struct {
	mu     sync.Mutex
	rows   map[int]category.Category
	nextID int
	clock  time.Time

	// Err, when set, is returned by every call.
	Err error
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		rows:   map[int]category.Category{},
		nextID: 1,
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so creation order is observable.
func (r *CategoryRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *CategoryRepository) sorted() []category.Category {
	out := make([]category.Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *CategoryRepository) nameTaken(name string, except int) bool {
	for id, c := range r.rows {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func uniqueViolation() error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "categories_name_key"`,
		TableName:      category.Table,
		ConstraintName: "categories_name_key",
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.sorted(), nil
}

func (r *CategoryRepository) ListPaged(ctx context.Context, offset, limit int) ([]category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	all := r.sorted()
	if offset >= len(all) {
		return []category.Category{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.rows), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	c, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("get category %d: %w", id, sql.ErrNoRows)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	if r.nameTaken(name, 0) {
		return nil, fmt.Errorf("create category: %w", uniqueViolation())
	}

	now := r.tick()
	c := category.Category{ID: r.nextID, Name: name, CreatedAt: now, UpdatedAt: now}
	r.rows[c.ID] = c
	r.nextID++
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, name string) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	c, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("update category %d: %w", id, sql.ErrNoRows)
	}
	if r.nameTaken(name, id) {
		return nil, fmt.Errorf("update category %d: %w", id, uniqueViolation())
	}

	c.Name = name
	c.UpdatedAt = r.tick()
	r.rows[id] = c
	return &c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	c, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("delete category %d: %w", id, sql.ErrNoRows)
	}
	delete(r.rows, id)
	return &c, nil
}
