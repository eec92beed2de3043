package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pqUniqueViolation       pq.ErrorCode  = "23505"
	pqIntegrityViolation    pq.ErrorClass = "23"
	pqDataException         pq.ErrorClass = "22"
	sqliteUniqueViolation                 = "UNIQUE constraint failed"
	sqliteConstraintFailure               = "constraint failed"
)

// IsDuplicateKeyErr reports whether err is a unique or primary key violation.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	return strings.Contains(err.Error(), sqliteUniqueViolation)
}

// IsConstraintErr reports whether the database rejected the row itself:
// integrity constraint violations (unique, not null, check) and invalid values.
func IsConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	if IsDuplicateKeyErr(err) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		class := pqErr.Code.Class()
		return class == pqIntegrityViolation || class == pqDataException
	}

	return strings.Contains(err.Error(), sqliteConstraintFailure)
}
