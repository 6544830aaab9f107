package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"article_board/internal/models"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

var _ Articles = (*ArticleRepository)(nil)

const (
	insertArticleSQL = `INSERT INTO articles (title, body, category, submitted_by, created_at) VALUES (?, ?, ?, ?, ?)`

	// id DESC breaks ties within the same timestamp second, keeping the
	// newest insert first.
	selectArticlesSQL = `SELECT a.id, a.title, a.body, a.category, a.submitted_by, a.created_at, u.email AS author_email
FROM articles a
JOIN users u ON a.submitted_by = u.id
ORDER BY a.created_at DESC, a.id DESC`
)

// Insert stores a new article and returns its ID. If CreatedAt is zero
// it is stamped here.
func (r *ArticleRepository) Insert(ctx context.Context, a models.Article) (int, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertArticleSQL,
		a.Title,
		a.Body,
		a.Category,
		a.SubmittedBy,
		a.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert article %q: %w", a.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for article %q: %w", a.Title, err)
	}
	return int(lastID), nil
}

// List returns all articles joined with the submitter's email, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, selectArticlesSQL)
	if err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, 32)
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Category, &a.SubmittedBy, &a.CreatedAt, &a.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article rows: %w", err)
	}
	return out, nil
}
