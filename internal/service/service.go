package service

import (
	"context"
	"time"

	"article_board/internal/models"
	"article_board/internal/repository"
)

type Authorization interface {
	Register(email, password string) (models.User, error)
	Login(email, password string) (string, models.User, error)
	ParseToken(accessToken string) (int, error)
}

// Users exposes read-only access to the registered accounts.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewArticle is the payload for creating an article.
type NewArticle struct {
	Title    string
	Body     string
	Category string
}

// Articles exposes the public article listing and authenticated creation.
type Articles interface {
	List(ctx context.Context) ([]models.Article, error)
	Create(ctx context.Context, in NewArticle, userID int) (int, error)
}

// AuthConfig carries the process-wide token settings, loaded once at
// startup and injected here instead of being read from the environment
// at call time.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Articles
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Users:         NewUserService(repos.Users),
		Articles:      NewArticleService(repos.Articles),
	}
}
