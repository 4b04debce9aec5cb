package reset

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"

	"github.com/go-redis/redis/v9"
)

const KEY_PREFIX = "reset_request::"

type record struct {
	Username string    `json:"username"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// RedisRepository keeps at most one reset request per username. Keys
// carry the request TTL, so lapsed requests vanish without a sweeper.
// Pop relies on GETDEL, which makes load+delete one atomic step.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &RedisRepository{client: client, ttl: ttl}
}

func (r *RedisRepository) Save(ctx context.Context, request reset.Request) error {
	body, err := json.Marshal(encodeRequest(request))
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(request.Username), body, r.ttl).Err()
}

func (r *RedisRepository) Get(ctx context.Context, username c.Username) (request reset.Request, err error) {
	body, err := r.client.Get(ctx, key(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return request, reset.ErrRequestDoesNotExist
	}
	if err != nil {
		return request, err
	}
	return decodeRequest(body)
}

func (r *RedisRepository) Pop(ctx context.Context, username c.Username) (request reset.Request, err error) {
	body, err := r.client.GetDel(ctx, key(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return request, reset.ErrRequestDoesNotExist
	}
	if err != nil {
		return request, err
	}
	return decodeRequest(body)
}

func (r *RedisRepository) Delete(ctx context.Context, username c.Username) error {
	return r.client.Del(ctx, key(username)).Err()
}

func key(username c.Username) string {
	return KEY_PREFIX + string(username)
}

func encodeRequest(request reset.Request) record {
	return record{
		Username: string(request.Username),
		Token:    string(request.Token),
		IssuedAt: request.IssuedAt,
	}
}

func decodeRequest(body []byte) (request reset.Request, err error) {
	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return request, err
	}
	return reset.Request{
		Username: c.Username(rec.Username),
		Token:    reset.Token(rec.Token),
		IssuedAt: rec.IssuedAt,
	}, nil
}
