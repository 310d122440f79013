// Package model holds the wire shapes shared by every resource.
package model

import "math"

// Envelope wraps every successful response body.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// NewEnvelope pairs data with a human readable message.
func NewEnvelope[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Data: data, Message: message}
}

// Paginated is one page of a list together with its paging metadata.
type Paginated[T any] struct {
	Items     []T `json:"items"`
	TotalItem int `json:"totalItem" validate:"gte=0"`
	Page      int `json:"page" validate:"gt=0"`
	Limit     int `json:"limit" validate:"gt=0"`
	TotalPage int `json:"totalPage" validate:"gte=0"`
}

// NewPaginated builds a page, never returning a nil Items slice.
func NewPaginated[T any](items []T, totalItem, page, limit int) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Items:     items,
		TotalItem: totalItem,
		Page:      page,
		Limit:     limit,
		TotalPage: TotalPages(totalItem, limit),
	}
}

// TotalPages is ceil(totalItem / limit), 0 for an empty set.
func TotalPages(totalItem, limit int) int {
	if limit <= 0 || totalItem <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItem) / float64(limit)))
}

// Offset converts a 1-based page into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
