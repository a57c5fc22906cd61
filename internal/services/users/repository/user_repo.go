package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/domain"
)

var ErrNotFound = errors.New("user not found")

type UsersRepositoryInterface interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, bool, error)
	GetByIdentifier(ctx context.Context, identifier string) (domain.User, bool, error)
	GetByID(ctx context.Context, userID int) (domain.User, error)
	UpdatePassword(ctx context.Context, userID int, hash string) error
	UpdateDetails(ctx context.Context, userID int, email, phone, address string) error
}

type UsersRepository struct {
	pool *pgxpool.Pool
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

const userColumns = `user_id, first_name, last_name, address, email, phone, password`

func (r *UsersRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, address, email, phone, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id`,
		user.FirstName, user.LastName, user.Address, user.Email, user.Phone, user.Password,
	).Scan(&user.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByIdentifier resolves a user by email or phone, the login contract.
func (r *UsersRepository) GetByIdentifier(ctx context.Context, identifier string) (domain.User, bool, error) {
	return r.getOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR phone = $1`, identifier)
}

func (r *UsersRepository) getOne(ctx context.Context, query string, args ...any) (domain.User, bool, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.UserID, &u.FirstName, &u.LastName, &u.Address, &u.Email, &u.Phone, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("query user: %w", err)
	}
	return u, true, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, userID int) (domain.User, error) {
	u, ok, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

func (r *UsersRepository) UpdatePassword(ctx context.Context, userID int, hash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE user_id = $2`, hash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepository) UpdateDetails(ctx context.Context, userID int, email, phone, address string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET email = $1, phone = $2, address = $3 WHERE user_id = $4`,
		email, phone, address, userID)
	if err != nil {
		return fmt.Errorf("update details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
