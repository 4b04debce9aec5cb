package reset

import (
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"time"
)

// Token is the opaque secret delivered to the user out of band. The
// stored value never appears in logs.
type Token string

func (t Token) String() string {
	return "***"
}

// Request is the single pending password reset for a username. At most
// one request per username exists at any time; issuing a new one
// supersedes the previous request.
type Request struct {
	Username c.Username
	Token    Token
	IssuedAt time.Time
}

// IsExpired reports whether the request lapsed its validity window.
func (r Request) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.IssuedAt) > ttl
}

type TokenGenerator interface {
	GenerateToken() Token
}

type PasswordGenerator interface {
	GeneratePassword() user.RawPassword
}
