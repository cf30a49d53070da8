// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package store

import (
	"context"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository], operating on the "audit_events" table.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEvent stores one disclosure event. Failures are a caller concern:
// the resolution itself already succeeded, so callers log-and-continue.
func (r *auditRepository) AppendEvent(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecRetry(ctx, appendAuditEvent,
		event.UserID,
		event.Requester,
		event.ContextName,
		string(event.OIDCProperty),
		event.DisclosedName,
		string(event.Source),
		event.TraceID,
	); err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendEvent").Int64("user_id", event.UserID).Msg("error appending audit event")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListEvents returns the user's most recent disclosure events, newest first.
func (r *auditRepository) ListEvents(ctx context.Context, userID int64, limit int64) ([]models.AuditEvent, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAuditEvents, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListEvents").Int64("user_id", userID).Msg("error listing audit events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AuditEvent, 0, 32)

	for rows.Next() {
		var item models.AuditEvent
		var property, source string

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Requester,
			&item.ContextName,
			&property,
			&item.DisclosedName,
			&source,
			&item.TraceID,
			&item.CreatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.OIDCProperty = models.OIDCProperty(property)
		item.Source = models.AssignmentSource(source)
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return results, nil
}
