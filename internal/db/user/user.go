package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "portal_user_username_idx"
const EMAIL_CONSTRAINT_NAME = "portal_user_email_idx"

const createUserSQL = `
INSERT INTO portal_user (username, email, first_name, last_name, password_hash, attributes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

const getUserByUsernameSQL = `
SELECT id, username, email, first_name, last_name, password_hash, attributes, created_at
FROM portal_user
WHERE username = $1
`

const userExistsSQL = `
SELECT EXISTS (SELECT 1 FROM portal_user WHERE username = $1)
`

const setPasswordSQL = `
UPDATE portal_user SET password_hash = $2 WHERE username = $1
`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	attributes, err := encodeAttributes(input.Attributes)
	if err != nil {
		return u, err
	}

	var id int64
	err = r.db.QueryRow(
		ctx,
		createUserSQL,
		string(input.Username),
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		attributes,
		input.CreatedAt,
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case USERNAME_CONSTRAINT_NAME:
			return u, user.ErrUsernameAlreadyExists
		case EMAIL_CONSTRAINT_NAME:
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}

	u = user.User{
		ID:           user.ID(id),
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		Attributes:   input.Attributes,
		CreatedAt:    input.CreatedAt,
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByUsername(ctx context.Context, username c.Username) (u user.User, err error) {
	var (
		id           int64
		dbUsername   string
		dbEmail      string
		firstName    sql.NullString
		lastName     sql.NullString
		passwordHash string
		attributes   pgtype.JSONB
		createdAt    time.Time
	)
	err = r.db.QueryRow(ctx, getUserByUsernameSQL, string(username)).Scan(
		&id, &dbUsername, &dbEmail, &firstName, &lastName, &passwordHash, &attributes, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}

	decodedAttributes, err := decodeAttributes(attributes)
	if err != nil {
		return u, err
	}
	u = user.User{
		ID:           user.ID(id),
		Username:     c.Username(dbUsername),
		Email:        c.Email(dbEmail),
		FirstName:    firstName.String,
		LastName:     lastName.String,
		PasswordHash: user.PasswordHash(passwordHash),
		Attributes:   decodedAttributes,
		CreatedAt:    createdAt,
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) Exists(ctx context.Context, username c.Username) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, userExistsSQL, string(username)).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, username c.Username, password user.PasswordHash) error {
	tag, err := r.db.Exec(ctx, setPasswordSQL, string(username), string(password))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeAttributes(attributes user.Attributes) (pgtype.JSONB, error) {
	encoded := pgtype.JSONB{}
	if attributes == nil {
		attributes = user.Attributes{}
	}
	if err := encoded.Set(map[string]string(attributes)); err != nil {
		return encoded, err
	}
	return encoded, nil
}

func decodeAttributes(encoded pgtype.JSONB) (user.Attributes, error) {
	attributes := make(map[string]string)
	if encoded.Status != pgtype.Present {
		return user.Attributes(attributes), nil
	}
	if err := encoded.AssignTo(&attributes); err != nil {
		return nil, err
	}
	return user.Attributes(attributes), nil
}
