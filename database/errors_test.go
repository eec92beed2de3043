package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassification(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectDuplicate bool
		expectConstrain bool
	}{
		{name: "Nil", err: nil},
		{name: "Unrelated", err: errors.New("connection refused")},
		{name: "Gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), expectDuplicate: true, expectConstrain: true},
		{name: "Postgres unique violation", err: &pq.Error{Code: "23505"}, expectDuplicate: true, expectConstrain: true},
		{name: "Postgres check violation", err: &pq.Error{Code: "23514"}, expectConstrain: true},
		{name: "Postgres numeric overflow", err: &pq.Error{Code: "22003"}, expectConstrain: true},
		{name: "Postgres syntax error", err: &pq.Error{Code: "42601"}},
		{name: "SQLite unique", err: errors.New("constraint failed: UNIQUE constraint failed: product.code (1555)"), expectDuplicate: true, expectConstrain: true},
		{name: "SQLite check", err: errors.New("constraint failed: CHECK constraint failed: length(code) > 0 (275)"), expectConstrain: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectDuplicate, IsDuplicateKeyErr(tc.err))
			assert.Equal(t, tc.expectConstrain, IsConstraintErr(tc.err))
		})
	}
}
