package store

import "github.com/truenamepath/truenamepath/internal/logger"

// Storages bundles every repository the service layer depends on. The
// concrete repositories all share the one database handle.
type Storages struct {
	UserRepository       UserRepository
	NameRepository       NameRepository
	ContextRepository    ContextRepository
	AssignmentRepository AssignmentRepository
	OAuthRepository      OAuthRepository
	AuditRepository      AuditRepository
}

// NewStorages constructs the full repository set over the given database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		NameRepository:       NewNameRepository(db, logger),
		ContextRepository:    NewContextRepository(db, logger),
		AssignmentRepository: NewAssignmentRepository(db, logger),
		OAuthRepository:      NewOAuthRepository(db, logger),
		AuditRepository:      NewAuditRepository(db, logger),
	}
}
