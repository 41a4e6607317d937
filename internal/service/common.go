package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"

	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates in requests
const DateLayout = "2006-01-02"

// Pagination defaults shared by the list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListResponse is a page of items with the total across all pages
type ListResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func newList[T any](items []T, total int64, page, pageSize int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}

// NormalizePage clamps page and page size to sane values
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func pageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// actor is the email recorded in created_by/updated_by
func actor(ctx context.Context) string {
	if ctx != nil {
		if email, ok := ctx.Value(logger.ContextKeyEmail).(string); ok && email != "" {
			return email
		}
	}
	return "system"
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// lookup maps gorm.ErrRecordNotFound to the entity's not found error and
// wraps anything else.
func lookup(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
