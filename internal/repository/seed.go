package repository

import (
	"context"
	"fmt"

	"github.com/jmehdipour/jobs-api/internal/config"
)

// SeedJobs inserts the configured seed jobs in order, so with the default
// config they get ids 1 and 2 and the first user insert gets id 3.
func SeedJobs(ctx context.Context, repo JobsRepository, seeds []config.SeedJob) error {
	for _, s := range seeds {
		if _, err := repo.Insert(ctx, s.Name, s.Salary); err != nil {
			return fmt.Errorf("seed job %q: %w", s.Name, err)
		}
	}
	return nil
}
