package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestGate_Go/internal/database/postgres"
	"github.com/osse101/QuestGate_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Claim repository.Claim
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Claim: postgres.NewClaimRepository(dbPool),
	}
}
