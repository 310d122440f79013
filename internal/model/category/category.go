// Package category holds the category entity and its request/response schemas.
package category

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is the relation categories are stored in.
const Table = "categories"

// Category is a named classification record as stored in the database.
type Category struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var lower = cases.Lower(language.Und)

// NormalizeName is the form names are stored and compared in.
func NormalizeName(name string) string {
	return lower.String(name)
}
