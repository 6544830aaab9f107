package service

import (
	"context"

	"article_board/internal/models"
	"article_board/internal/repository"
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// List returns all registered users. Password hashes stay internal to
// the model and are stripped at serialization.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
