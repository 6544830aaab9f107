package handlers

import (
	"context"

	"article_board/internal/models"
	"article_board/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginToken   string
	loginUser    models.User
	loginErr     error
	parseID      int
	parseErr     error

	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(email, password string) (models.User, error) {
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(email, password string) (string, models.User, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	resp []models.User
	err  error
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.resp, m.err
}

type mockArticles struct {
	resp      []models.Article
	listErr   error
	createID  int
	createErr error

	lastCreate service.NewArticle
	lastUserID int
}

func (m *mockArticles) List(ctx context.Context) ([]models.Article, error) {
	return m.resp, m.listErr
}

func (m *mockArticles) Create(ctx context.Context, in service.NewArticle, userID int) (int, error) {
	m.lastCreate = in
	m.lastUserID = userID
	return m.createID, m.createErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
