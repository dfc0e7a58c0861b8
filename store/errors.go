// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateVote    = errors.New("user has already voted on this poll")
	ErrInvalidReference = errors.New("invalid poll or option")
	ErrPersistence      = errors.New("persistence failure")
	ErrPollNotFound     = errors.New("poll not found")
	ErrNotOwner         = errors.New("poll is owned by another user")
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
)

// PostgreSQL SQLSTATE codes
const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

// constraintViolation reports which storage constraint, if any, rejected a write
func constraintViolation(err error) violation {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return violationUnique
		case pqForeignKeyViolation:
			return violationForeignKey
		}
		return violationNone
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return violationUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return violationForeignKey
		}
		// Primary result code only; fall back to the message
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE constraint failed"):
				return violationUnique
			case strings.Contains(msg, "FOREIGN KEY constraint failed"):
				return violationForeignKey
			}
		}
	}

	return violationNone
}
