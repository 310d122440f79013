// Package repository handles all interactions with the database.
//
// Queries are built with squirrel and executed through sqlx on the
// shared pgx pool, abstracting SQL logic away from the service layer.
// Driver errors are returned wrapped but untranslated.
package repository

import "github.com/Masterminds/squirrel"

// psql renders $n placeholders for PostgreSQL.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
