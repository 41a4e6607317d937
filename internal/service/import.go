package service

import (
	apperrors "institute-portal-backend/internal/errors"
)

// ImportIssue is a spreadsheet row that was not imported
type ImportIssue struct {
	Line   int    `json:"line"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ImportResult reports what happened to each row of an uploaded sheet
type ImportResult struct {
	Total      int           `json:"total"`
	Inserted   int           `json:"inserted"`
	Duplicates []ImportIssue `json:"duplicates"`
	Invalid    []ImportIssue `json:"invalid"`
}

func newImportResult(total int) *ImportResult {
	return &ImportResult{Total: total, Duplicates: []ImportIssue{}, Invalid: []ImportIssue{}}
}

func (r *ImportResult) duplicate(line int, key, reason string) {
	r.Duplicates = append(r.Duplicates, ImportIssue{Line: line, Key: key, Reason: reason})
}

func (r *ImportResult) invalid(line int, key, reason string) {
	r.Invalid = append(r.Invalid, ImportIssue{Line: line, Key: key, Reason: reason})
}

// sheetError reports a problem with the uploaded file itself (unreadable,
// missing columns, no rows) as a validation error on the "file" field.
func sheetError(err error) error {
	return apperrors.NewValidationError("file", err.Error())
}
