// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// retryClassifier reports whether a failed statement is worth one more
// attempt.
type retryClassifier interface {
	retryable(err error) bool
}

// pgRetryClassifier implements [retryClassifier] for the pgx driver by
// inspecting the SQLSTATE code of the underlying *pgconn.PgError.
type pgRetryClassifier struct{}

func (pgRetryClassifier) retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return transientPgCode(pgErr.Code)
}

// transientPgCode reports whether a SQLSTATE code belongs to a transient
// condition: class 08 (connection exceptions), class 40 (transaction
// rollback, serialization failure, deadlock) or 57P03 (cannot connect now).
// Constraint violations, data exceptions and syntax errors are permanent and
// never retried.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func transientPgCode(code string) bool {
	switch code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return true
	}

	return false
}
