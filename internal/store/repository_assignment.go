package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

// assignmentRepository is the PostgreSQL-backed implementation of
// [AssignmentRepository], operating on the "assignments" table.
//
// The empty OIDC property is stored as '' rather than NULL so the
// (user_id, context_id, oidc_property) uniqueness constraint covers the
// context-wide slot too.
type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssignmentRepository constructs an [AssignmentRepository] backed by the
// provided database connection and logger.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

func scanAssignment(row interface{ Scan(...any) error }) (models.Assignment, error) {
	var a models.Assignment
	var property string
	err := row.Scan(&a.AssignmentID, &a.UserID, &a.ContextID, &a.NameID, &property, &a.CreatedAt, &a.UpdatedAt)
	a.OIDCProperty = models.OIDCProperty(property)
	return a, err
}

// FindAssignments retrieves the user's assignments narrowed by filter. The
// query is assembled with squirrel so any combination of context and
// property filters maps to one statement.
func (r *assignmentRepository) FindAssignments(ctx context.Context, userID int64, filter AssignmentFilter) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAssignmentsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAssignments").Int64("user_id", userID).Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAssignments").Int64("user_id", userID).Msg("failed to execute assignment query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

// ListAssignments retrieves every assignment of the user. The reconciler and
// batch resolver fetch current state through this single call.
func (r *assignmentRepository) ListAssignments(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return r.FindAssignments(ctx, userID, AssignmentFilter{})
}

func collectAssignments(rows *sql.Rows) ([]models.Assignment, error) {
	results := make([]models.Assignment, 0, 16)

	for rows.Next() {
		item, scanErr := scanAssignment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return results, nil
}

// UpsertAssignment inserts or replaces the binding of the
// (context, property) slot. ON CONFLICT updates name_id in place, keeping
// created_at intact across re-binding.
//
// Callers pre-validate ownership of context and name ids, so a
// foreign_key_violation here is an internal error, not a user error.
func (r *assignmentRepository) UpsertAssignment(ctx context.Context, userID, contextID, nameID int64, property models.OIDCProperty) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertAssignment, userID, contextID, nameID, string(property))
	saved, err := scanAssignment(row)
	if err != nil {
		log.Err(err).
			Str("func", "*assignmentRepository.UpsertAssignment").
			Int64("user_id", userID).
			Int64("context_id", contextID).
			Int64("name_id", nameID).
			Str("oidc_property", string(property)).
			Msg("error upserting assignment")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Assignment{}, fmt.Errorf("referenced row missing: %w", err)
		default:
			return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// DeleteAssignment clears the (context, property) slot.
// Returns [ErrAssignmentNotFound] when the slot held no binding.
func (r *assignmentRepository) DeleteAssignment(ctx context.Context, userID, contextID int64, property models.OIDCProperty) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecRetry(ctx, deleteAssignment, userID, contextID, string(property))
	if err != nil {
		log.Err(err).
			Str("func", "*assignmentRepository.DeleteAssignment").
			Int64("user_id", userID).
			Int64("context_id", contextID).
			Str("oidc_property", string(property)).
			Msg("error deleting assignment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// CountByName returns how many assignments reference the given name.
func (r *assignmentRepository) CountByName(ctx context.Context, userID, nameID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countAssignmentsByName, userID, nameID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*assignmentRepository.CountByName").Int64("user_id", userID).Int64("name_id", nameID).Msg("error counting assignments by name")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
