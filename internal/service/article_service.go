package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"article_board/internal/models"
	"article_board/internal/repository"
)

var (
	ErrMissingArticleFields = errors.New("title, body and category are required")
	ErrNoSubmitter          = errors.New("article submitter is unknown")
)

type ArticleService struct {
	articles repository.Articles
}

func NewArticleService(articles repository.Articles) *ArticleService {
	return &ArticleService{articles: articles}
}

// List returns all articles joined with submitter emails, newest first.
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articles.List(ctx)
}

// Create validates the payload and stores the article on behalf of the
// authenticated user.
func (s *ArticleService) Create(ctx context.Context, in NewArticle, userID int) (int, error) {
	if userID <= 0 {
		return 0, ErrNoSubmitter
	}
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	category := strings.TrimSpace(in.Category)
	if title == "" || body == "" || category == "" {
		return 0, ErrMissingArticleFields
	}

	return s.articles.Insert(ctx, models.Article{
		Title:       title,
		Body:        body,
		Category:    category,
		SubmittedBy: userID,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	})
}
