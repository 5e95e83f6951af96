package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wichananm65/shopping-backend/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getUserByEmailQuery = `
		SELECT id, email, password
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id
	`
	countUsersQuery = `SELECT COUNT(*) FROM users`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, getUserByEmailQuery, email).
		Scan(&user.ID, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user User) (User, error) {
	var id int64
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, insertUserQuery, user.Email, user.Password).Scan(&id); err != nil {
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, countUsersQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
