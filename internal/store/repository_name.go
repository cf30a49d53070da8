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

// nameRepository is the PostgreSQL-backed implementation of [NameRepository].
// It executes all name-variant CRUD operations against the "names" table.
type nameRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNameRepository constructs a [NameRepository] backed by the provided
// database connection and logger.
func NewNameRepository(db *DB, logger *logger.Logger) NameRepository {
	logger.Debug().Msg("creating name repository")
	return &nameRepository{
		db:     db,
		logger: logger,
	}
}

func scanName(row interface{ Scan(...any) error }) (models.Name, error) {
	var n models.Name
	err := row.Scan(&n.NameID, &n.UserID, &n.Text, &n.Category, &n.IsPreferred, &n.Verified, &n.Source, &n.CreatedAt)
	return n, err
}

// CreateName persists a new name variant and returns it with server-assigned
// fields populated.
//
// Error handling:
//   - PostgreSQL unique_violation on the partial preferred index →
//     [ErrPreferredNameConflict].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *nameRepository) CreateName(ctx context.Context, name models.Name) (models.Name, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createName,
		name.UserID, name.Text, string(name.Category), name.IsPreferred, name.Verified, name.Source)

	created, err := scanName(row)
	if err != nil {
		log.Err(err).Str("func", "*nameRepository.CreateName").Int64("user_id", name.UserID).Msg("error creating name")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Name{}, ErrPreferredNameConflict
		default:
			return models.Name{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindNameByID retrieves a single name variant scoped by owner.
// Returns [ErrNameNotFound] when no row matches.
func (r *nameRepository) FindNameByID(ctx context.Context, userID, nameID int64) (models.Name, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findNameByID, userID, nameID)
	found, err := scanName(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Name{}, ErrNameNotFound
		}
		log.Err(err).Str("func", "*nameRepository.FindNameByID").Int64("user_id", userID).Int64("name_id", nameID).Msg("error finding name")
		return models.Name{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindNamesByIDs retrieves the name variants with the given ids, scoped by
// owner. Ids that match no row are silently absent from the result; the
// caller decides whether that is an ownership violation.
func (r *nameRepository) FindNamesByIDs(ctx context.Context, userID int64, nameIDs []int64) ([]models.Name, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findNamesByIDs, userID, nameIDs)
	if err != nil {
		log.Err(err).Str("func", "*nameRepository.FindNamesByIDs").Int64("user_id", userID).Msg("error querying names by ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectNames(rows)
}

// ListNames retrieves every name variant of the user ordered by id.
func (r *nameRepository) ListNames(ctx context.Context, userID int64) ([]models.Name, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNames, userID)
	if err != nil {
		log.Err(err).Str("func", "*nameRepository.ListNames").Int64("user_id", userID).Msg("error listing names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectNames(rows)
}

func collectNames(rows *sql.Rows) ([]models.Name, error) {
	results := make([]models.Name, 0, 8)

	for rows.Next() {
		item, scanErr := scanName(rows)
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

// FindPreferredName returns the user's preferred name. The query orders by
// name_id and takes the first row, so even corrupted data with several
// preferred rows resolves deterministically.
// Returns [ErrNameNotFound] when no name is flagged preferred.
func (r *nameRepository) FindPreferredName(ctx context.Context, userID int64) (models.Name, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPreferredName, userID)
	found, err := scanName(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Name{}, ErrNameNotFound
		}
		log.Err(err).Str("func", "*nameRepository.FindPreferredName").Int64("user_id", userID).Msg("error finding preferred name")
		return models.Name{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ClearPreferred drops the preferred flag from the user's current preferred
// name, if any. Clearing when nothing is flagged is a no-op.
func (r *nameRepository) ClearPreferred(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearPreferredName, userID); err != nil {
		log.Err(err).Str("func", "*nameRepository.ClearPreferred").Int64("user_id", userID).Msg("error clearing preferred flag")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdateName applies the non-nil fields of update to the name row and
// returns the updated state.
//
// Error handling:
//   - No matching row → [ErrNameNotFound].
//   - unique_violation on the preferred index → [ErrPreferredNameConflict].
func (r *nameRepository) UpdateName(ctx context.Context, userID, nameID int64, update models.UpdateNameRequest) (models.Name, error) {
	log := logger.FromContext(ctx)

	query, args := buildUpdateNameQuery(userID, nameID, update)

	row := r.db.QueryRowContext(ctx, query, args...)
	updated, err := scanName(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Name{}, ErrNameNotFound
		}

		log.Err(err).Str("func", "*nameRepository.UpdateName").Int64("user_id", userID).Int64("name_id", nameID).Msg("error updating name")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Name{}, ErrPreferredNameConflict
		default:
			return models.Name{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteName removes a name variant. Returns [ErrNameNotFound] when the row
// does not exist (or belongs to another user).
func (r *nameRepository) DeleteName(ctx context.Context, userID, nameID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteName, userID, nameID)
	if err != nil {
		log.Err(err).Str("func", "*nameRepository.DeleteName").Int64("user_id", userID).Int64("name_id", nameID).Msg("error deleting name")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNameNotFound
	}

	return nil
}

// CountNames returns how many name variants the user owns; the last-name
// deletion guard consults it.
func (r *nameRepository) CountNames(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countNames, userID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*nameRepository.CountNames").Int64("user_id", userID).Msg("error counting names")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
