// Package user содержит логику профиля пользователя: чтение, частичное
// обновление и мягкое удаление учётной записи.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
	"github.com/magabrotheeeer/tripx-backend/internal/storage/repository"
)

// ErrNotFound — пользователь не найден.
var ErrNotFound = errors.New("user not found")

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	DeactivateUser(ctx context.Context, userUID string) error
}

// Service реализует операции над профилем текущего пользователя.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Me возвращает профиль текущего пользователя.
func (s *Service) Me(ctx context.Context, userUID string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update применяет частичное обновление профиля. Пароль этим путём не меняется.
func (s *Service) Update(ctx context.Context, userUID string, patch models.PatchProfile) (*models.User, error) {
	user, err := s.Me(ctx, userUID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	updated, err := s.repo.UpdateUser(ctx, *user)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.log.Info("updated user profile", slog.String("uid", userUID))
	return updated, nil
}

// Deactivate мягко удаляет учётную запись: она помечается неактивной,
// данные не стираются.
func (s *Service) Deactivate(ctx context.Context, userUID string) error {
	if err := s.repo.DeactivateUser(ctx, userUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info("deactivated user", slog.String("uid", userUID))
	return nil
}
