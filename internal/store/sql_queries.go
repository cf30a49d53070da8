// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/truenamepath/truenamepath/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, full_name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, full_name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, full_name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, full_name, created_at
    FROM users
    WHERE user_id = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1);`

	createName = `INSERT INTO names (user_id, name_text, category, is_preferred, verified, source)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING name_id, user_id, name_text, category, is_preferred, verified, source, created_at;`

	findNameByID = `SELECT name_id, user_id, name_text, category, is_preferred, verified, source, created_at
    FROM names
    WHERE user_id = $1 AND name_id = $2;`

	findNamesByIDs = `SELECT name_id, user_id, name_text, category, is_preferred, verified, source, created_at
    FROM names
    WHERE user_id = $1 AND name_id = ANY($2);`

	listNames = `SELECT name_id, user_id, name_text, category, is_preferred, verified, source, created_at
    FROM names
    WHERE user_id = $1
    ORDER BY name_id;`

	// Lowest name_id wins when corrupted data holds more than one
	// preferred row.
	findPreferredName = `SELECT name_id, user_id, name_text, category, is_preferred, verified, source, created_at
    FROM names
    WHERE user_id = $1 AND is_preferred
    ORDER BY name_id
    LIMIT 1;`

	clearPreferredName = `UPDATE names SET is_preferred = FALSE
    WHERE user_id = $1 AND is_preferred;`

	deleteName = `DELETE FROM names
    WHERE user_id = $1 AND name_id = $2;`

	countNames = `SELECT COUNT(*) FROM names WHERE user_id = $1;`

	createContext = `INSERT INTO contexts (user_id, context_name, description, is_permanent)
    VALUES ($1, $2, $3, $4)
    RETURNING context_id, user_id, context_name, description, is_permanent, created_at;`

	findContextByID = `SELECT context_id, user_id, context_name, description, is_permanent, created_at
    FROM contexts
    WHERE user_id = $1 AND context_id = $2;`

	findContextByName = `SELECT context_id, user_id, context_name, description, is_permanent, created_at
    FROM contexts
    WHERE user_id = $1 AND context_name = $2;`

	findContextsByIDs = `SELECT context_id, user_id, context_name, description, is_permanent, created_at
    FROM contexts
    WHERE user_id = $1 AND context_id = ANY($2);`

	listContexts = `SELECT context_id, user_id, context_name, description, is_permanent, created_at
    FROM contexts
    WHERE user_id = $1
    ORDER BY context_id;`

	deleteContext = `DELETE FROM contexts
    WHERE user_id = $1 AND context_id = $2;`

	countContextAssignments = `SELECT COUNT(*) FROM assignments
    WHERE user_id = $1 AND context_id = $2;`

	deleteContextAssignments = `DELETE FROM assignments
    WHERE user_id = $1 AND context_id = $2;`

	upsertAssignment = `INSERT INTO assignments (user_id, context_id, name_id, oidc_property)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id, context_id, oidc_property)
    DO UPDATE SET name_id = EXCLUDED.name_id, updated_at = NOW()
    RETURNING assignment_id, user_id, context_id, name_id, oidc_property, created_at, updated_at;`

	deleteAssignment = `DELETE FROM assignments
    WHERE user_id = $1 AND context_id = $2 AND oidc_property = $3;`

	countAssignmentsByName = `SELECT COUNT(*) FROM assignments
    WHERE user_id = $1 AND name_id = $2;`

	upsertOAuthClient = `INSERT INTO oauth_clients (client_id, secret_hash, display_name, redirect_uri, context_name)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (client_id)
    DO UPDATE SET secret_hash = EXCLUDED.secret_hash,
                  display_name = EXCLUDED.display_name,
                  redirect_uri = EXCLUDED.redirect_uri,
                  context_name = EXCLUDED.context_name
    RETURNING id, client_id, secret_hash, display_name, redirect_uri, context_name, created_at;`

	findOAuthClient = `SELECT id, client_id, secret_hash, display_name, redirect_uri, context_name, created_at
    FROM oauth_clients
    WHERE client_id = $1;`

	createAuthorizationCode = `INSERT INTO authorization_codes (code, client_id, user_id, expires_at)
    VALUES ($1, $2, $3, $4);`

	consumeAuthorizationCode = `UPDATE authorization_codes
    SET used = TRUE
    WHERE code = $1 AND NOT used AND expires_at > NOW()
    RETURNING code, client_id, user_id, expires_at, used;`

	appendAuditEvent = `INSERT INTO audit_events (user_id, requester, context_name, oidc_property, disclosed_name, source, trace_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	listAuditEvents = `SELECT id, user_id, requester, context_name, oidc_property, disclosed_name, source, trace_id, created_at
    FROM audit_events
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2;`
)

// assignmentColumns is the canonical column order shared by every assignment
// SELECT, built statically or via squirrel.
var assignmentColumns = []string{
	"assignment_id",
	"user_id",
	"context_id",
	"name_id",
	"oidc_property",
	"created_at",
	"updated_at",
}

// buildFindAssignmentsQuery assembles the filtered assignment lookup with
// squirrel. The WHERE clause always scopes by user_id; context and property
// filters are appended only when set so one builder serves every combination
// the resolver needs.
func buildFindAssignmentsQuery(userID int64, filter AssignmentFilter) (string, []any, error) {
	builder := sq.Select(assignmentColumns...).
		From("assignments").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.ContextID != 0 {
		builder = builder.Where(sq.Eq{"context_id": filter.ContextID})
	}

	if filter.HasProperty {
		builder = builder.Where(sq.Eq{"oidc_property": string(filter.OIDCProperty)})
	}

	return builder.OrderBy("assignment_id").ToSql()
}

const (
	updateNameBase = `
		UPDATE names
		SET verified = verified`
	updateNameWhere = `
		WHERE user_id = $%d AND name_id = $%d`
	updateNameReturning = `
		RETURNING name_id, user_id, name_text, category, is_preferred, verified, source, created_at`
)

// buildUpdateNameQuery dynamically builds the partial UPDATE for a name row.
// Only non-nil fields of update produce SET clauses.
func buildUpdateNameQuery(userID, nameID int64, update models.UpdateNameRequest) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(updateNameBase)

	args := make([]any, 0, 5)
	setClauses := make([]string, 0, 3)
	argIndex := 1

	if update.Text != nil {
		setClauses = append(setClauses, fmt.Sprintf("name_text = $%d", argIndex))
		args = append(args, *update.Text)
		argIndex++
	}

	if update.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, string(*update.Category))
		argIndex++
	}

	if update.IsPreferred != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_preferred = $%d", argIndex))
		args = append(args, *update.IsPreferred)
		argIndex++
	}

	if len(setClauses) > 0 {
		queryBuilder.WriteString(", ")
		queryBuilder.WriteString(strings.Join(setClauses, ", "))
	}

	queryBuilder.WriteString(fmt.Sprintf(updateNameWhere, argIndex, argIndex+1))
	args = append(args, userID, nameID)

	queryBuilder.WriteString(updateNameReturning)

	return queryBuilder.String(), args
}
