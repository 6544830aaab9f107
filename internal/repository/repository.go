package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"article_board/internal/models"
)

// ErrDuplicateEmail reports a users.email UNIQUE constraint violation.
var ErrDuplicateEmail = errors.New("email already exists")

type Users interface {
	Create(email, passwordHash string, createdAt time.Time) (int, error)
	GetByEmail(email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Articles interface {
	Insert(ctx context.Context, a models.Article) (int, error)
	List(ctx context.Context) ([]models.Article, error)
}

type Repository struct {
	Users    Users
	Articles Articles
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Articles: NewArticleRepository(db),
	}
}
