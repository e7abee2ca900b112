package util

import (
	"database/sql"
)

// PtrToNullString converts a *string to sql.NullString.
// A nil pointer is treated as NULL; an empty string is kept as a value.
func PtrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullStringToPtr converts a sql.NullString back to a *string, NULL becoming nil.
func NullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
