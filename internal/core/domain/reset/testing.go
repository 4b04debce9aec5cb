package reset

import (
	"context"
	"fmt"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"sync"
)

type FakeRepository struct {
	Requests    map[c.Username]Request
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Requests: make(map[c.Username]Request)}
}

func (r *FakeRepository) Save(ctx context.Context, request Request) error {
	if r.ReturnError {
		return fmt.Errorf("could not save reset request for %v", request.Username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Requests[request.Username] = request
	return nil
}

func (r *FakeRepository) Get(ctx context.Context, username c.Username) (request Request, err error) {
	if r.ReturnError {
		return request, fmt.Errorf("could not get reset request for %v", username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	request, ok := r.Requests[username]
	if !ok {
		return request, ErrRequestDoesNotExist
	}
	return request, nil
}

func (r *FakeRepository) Pop(ctx context.Context, username c.Username) (request Request, err error) {
	if r.ReturnError {
		return request, fmt.Errorf("could not pop reset request for %v", username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	request, ok := r.Requests[username]
	if !ok {
		return request, ErrRequestDoesNotExist
	}
	delete(r.Requests, username)
	return request, nil
}

func (r *FakeRepository) Delete(ctx context.Context, username c.Username) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete reset request for %v", username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Requests, username)
	return nil
}

func (r *FakeRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Requests)
}

type FakeTokenGenerator struct {
	Token Token
}

func NewFakeTokenGenerator(token string) *FakeTokenGenerator {
	return &FakeTokenGenerator{Token: Token(token)}
}

func (g *FakeTokenGenerator) GenerateToken() Token {
	return g.Token
}

type FakePasswordGenerator struct {
	Password user.RawPassword
}

func NewFakePasswordGenerator(password string) *FakePasswordGenerator {
	return &FakePasswordGenerator{Password: user.RawPassword(password)}
}

func (g *FakePasswordGenerator) GeneratePassword() user.RawPassword {
	return g.Password
}

type FakeNotifier struct {
	Sent        []Request
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) SendResetToken(ctx context.Context, u user.User, request Request) error {
	if n.ReturnError {
		return fmt.Errorf("could not send reset token for user %v", u.Username)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Sent = append(n.Sent, request)
	return nil
}

func (n *FakeNotifier) SentCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Sent)
}

func (n *FakeNotifier) LastSent() Request {
	n.lock.Lock()
	defer n.lock.Unlock()
	l := len(n.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return n.Sent[l-1]
}
