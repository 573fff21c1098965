package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation recognizes duplicate-key failures from the driver so
// controllers can answer 409 instead of 500. The string fallback covers
// sqlite in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
