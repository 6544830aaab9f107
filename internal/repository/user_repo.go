package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"article_board/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertUserSQL        = `INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`
	selectUsersSQL       = `SELECT id, email, password_hash, created_at FROM users ORDER BY id`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(email, passwordHash string, createdAt time.Time) (int, error) {
	res, err := r.db.Exec(insertUserSQL, email, passwordHash, createdAt.UTC().Format(sqliteTimeLayout))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("insert user %q: %w", email, ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByEmailSQL, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}
