package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

// contextRepository is the PostgreSQL-backed implementation of
// [ContextRepository], operating on the "contexts" table.
type contextRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContextRepository constructs a [ContextRepository] backed by the
// provided database connection and logger.
func NewContextRepository(db *DB, logger *logger.Logger) ContextRepository {
	logger.Debug().Msg("creating context repository")
	return &contextRepository{
		db:     db,
		logger: logger,
	}
}

func scanContext(row interface{ Scan(...any) error }) (models.Context, error) {
	var c models.Context
	err := row.Scan(&c.ContextID, &c.UserID, &c.Name, &c.Description, &c.IsPermanent, &c.CreatedAt)
	return c, err
}

// CreateContext persists a new disclosure context.
//
// Error handling:
//   - unique_violation on (user_id, context_name) → [ErrDuplicateContextName].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *contextRepository) CreateContext(ctx context.Context, c models.Context) (models.Context, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContext, c.UserID, c.Name, c.Description, c.IsPermanent)
	created, err := scanContext(row)
	if err != nil {
		log.Err(err).Str("func", "*contextRepository.CreateContext").Int64("user_id", c.UserID).Str("context_name", c.Name).Msg("error creating context")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Context{}, ErrDuplicateContextName
		default:
			return models.Context{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindContextByID retrieves a single context scoped by owner.
// Returns [ErrContextNotFound] when no row matches.
func (r *contextRepository) FindContextByID(ctx context.Context, userID, contextID int64) (models.Context, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findContextByID, userID, contextID)
	found, err := scanContext(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Context{}, ErrContextNotFound
		}
		log.Err(err).Str("func", "*contextRepository.FindContextByID").Int64("user_id", userID).Int64("context_id", contextID).Msg("error finding context")
		return models.Context{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindContextByName retrieves a context by its display name, scoped by owner.
// Returns [ErrContextNotFound] when no row matches — the resolver treats
// that as "fall through to the preferred name", not as a failure.
func (r *contextRepository) FindContextByName(ctx context.Context, userID int64, name string) (models.Context, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findContextByName, userID, name)
	found, err := scanContext(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Context{}, ErrContextNotFound
		}
		log.Err(err).Str("func", "*contextRepository.FindContextByName").Int64("user_id", userID).Str("context_name", name).Msg("error finding context by name")
		return models.Context{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindContextsByIDs retrieves contexts with the given ids, scoped by owner.
// Missing ids are silently absent; the caller decides whether that is an
// ownership violation.
func (r *contextRepository) FindContextsByIDs(ctx context.Context, userID int64, contextIDs []int64) ([]models.Context, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findContextsByIDs, userID, contextIDs)
	if err != nil {
		log.Err(err).Str("func", "*contextRepository.FindContextsByIDs").Int64("user_id", userID).Msg("error querying contexts by ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectContexts(rows)
}

// ListContexts retrieves every context of the user ordered by id.
func (r *contextRepository) ListContexts(ctx context.Context, userID int64) ([]models.Context, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listContexts, userID)
	if err != nil {
		log.Err(err).Str("func", "*contextRepository.ListContexts").Int64("user_id", userID).Msg("error listing contexts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectContexts(rows)
}

func collectContexts(rows *sql.Rows) ([]models.Context, error) {
	results := make([]models.Context, 0, 8)

	for rows.Next() {
		item, scanErr := scanContext(rows)
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

// DeleteContext removes a context row. Returns [ErrContextNotFound] when the
// row does not exist or belongs to another user. The service layer enforces
// the permanent-context and dangling-assignment guards before calling this.
func (r *contextRepository) DeleteContext(ctx context.Context, userID, contextID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContext, userID, contextID)
	if err != nil {
		log.Err(err).Str("func", "*contextRepository.DeleteContext").Int64("user_id", userID).Int64("context_id", contextID).Msg("error deleting context")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrContextNotFound
	}

	return nil
}

// CountContextAssignments returns how many assignments reference the context.
func (r *contextRepository) CountContextAssignments(ctx context.Context, userID, contextID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countContextAssignments, userID, contextID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*contextRepository.CountContextAssignments").Int64("user_id", userID).Int64("context_id", contextID).Msg("error counting context assignments")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// DeleteContextAssignments removes every assignment bound to the context.
// Used by the forced-cascade deletion path.
func (r *contextRepository) DeleteContextAssignments(ctx context.Context, userID, contextID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteContextAssignments, userID, contextID); err != nil {
		log.Err(err).Str("func", "*contextRepository.DeleteContextAssignments").Int64("user_id", userID).Int64("context_id", contextID).Msg("error deleting context assignments")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
