package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/category-service/internal/model/category"
	"github.com/jmoiron/sqlx"
)

var categoryColumns = []string{"id", "name", "created_at", "updated_at"}

const categoryReturning = "RETURNING id, name, created_at, updated_at"

// CategoryRepository reads and writes the categories table.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) newestFirst() squirrel.SelectBuilder {
	return psql.Select(categoryColumns...).
		From(category.Table).
		OrderBy("created_at DESC", "id DESC")
}

// List returns every category, newest first.
func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	query, args, err := r.newestFirst().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	categories := []category.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListPaged returns at most limit categories after skipping offset rows, newest first.
func (r *CategoryRepository) ListPaged(ctx context.Context, offset, limit int) ([]category.Category, error) {
	query, args, err := r.newestFirst().
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build paged categories query: %w", err)
	}

	categories := []category.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("list categories page: %w", err)
	}
	return categories, nil
}

// Count returns the total number of categories.
func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(category.Table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count categories query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// GetByID returns sql.ErrNoRows (wrapped) when the id does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From(category.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var c category.Category
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts a category; the unique constraint on name surfaces as *pgconn.PgError.
func (r *CategoryRepository) Create(ctx context.Context, name string) (*category.Category, error) {
	query, args, err := psql.Insert(category.Table).
		Columns("name").
		Values(name).
		Suffix(categoryReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create category query: %w", err)
	}

	var c category.Category
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// Update renames a category and refreshes updated_at.
func (r *CategoryRepository) Update(ctx context.Context, id int, name string) (*category.Category, error) {
	query, args, err := psql.Update(category.Table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(categoryReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category query: %w", err)
	}

	var c category.Category
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return &c, nil
}

// Delete removes a category and returns the row as it was.
func (r *CategoryRepository) Delete(ctx context.Context, id int) (*category.Category, error) {
	query, args, err := psql.Delete(category.Table).
		Where(squirrel.Eq{"id": id}).
		Suffix(categoryReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete category query: %w", err)
	}

	var c category.Category
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		return nil, fmt.Errorf("delete category %d: %w", id, err)
	}
	return &c, nil
}
