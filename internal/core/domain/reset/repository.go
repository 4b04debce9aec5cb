package reset

import (
	"context"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
)

// Repository persists at most one Request per username. Save for an
// existing username overwrites the pending request.
//
// Pop is the consumption primitive: it removes and returns the current
// request for the username in one atomic step, so that concurrent
// approval attempts cannot observe the same request twice.
type Repository interface {
	Save(ctx context.Context, request Request) error
	Get(ctx context.Context, username c.Username) (Request, error)
	Pop(ctx context.Context, username c.Username) (Request, error)
	Delete(ctx context.Context, username c.Username) error
}
