package reset

import (
	"context"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
)

// Notifier delivers the reset token to the user out of band. Delivery
// is fire-and-forget from the lifecycle's point of view.
type Notifier interface {
	SendResetToken(ctx context.Context, u user.User, request Request) error
}
