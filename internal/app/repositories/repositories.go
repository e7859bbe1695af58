package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql is the statement builder shared by every repository
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	PlacementRepository    *PlacementRepository
	CompanyVisitRepository *CompanyVisitRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		PlacementRepository:    NewPlacementRepository(db),
		CompanyVisitRepository: NewCompanyVisitRepository(db),
	}
}
