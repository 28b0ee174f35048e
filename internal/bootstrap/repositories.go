package bootstrap

import (
	"github.com/osse101/jobboard/internal/database/postgres"
	"github.com/osse101/jobboard/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Job     repository.Job
	Company repository.Company
}

// InitializeRepositories creates all repository implementations on the given pool
func InitializeRepositories(db postgres.Querier) *Repositories {
	return &Repositories{
		Job:     postgres.NewJobRepository(db),
		Company: postgres.NewCompanyRepository(db),
	}
}
