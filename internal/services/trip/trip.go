// Package trip содержит бизнес-логику работы с поездками пользователя.
package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// dateLayout — формат дат начала и конца поездки в запросах.
const dateLayout = "2006-01-02"

// Repository определяет методы для работы с поездками в хранилище.
type Repository interface {
	// CreateTrip сохраняет новую поездку и возвращает её с выставленным ID.
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	// ListTripsByUser возвращает все поездки пользователя.
	ListTripsByUser(ctx context.Context, userUID string) ([]*models.Trip, error)
}

// Service реализует бизнес-логику работы с поездками.
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

// Create создает новую поездку текущего пользователя. Владелец штампуется
// из контекста запроса и не может быть задан полезной нагрузкой.
// Соотношение дат начала и конца не проверяется.
func (s *Service) Create(ctx context.Context, userUID string, req models.DummyTrip) (*models.Trip, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	trip := &models.Trip{
		UserUID:     userUID,
		TripName:    req.TripName,
		Destination: req.Destination,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Activities:  req.Activities,
		CoverImage:  req.CoverImage,
	}
	if trip.Activities == nil {
		trip.Activities = []string{}
	}

	created, err := s.repo.CreateTrip(ctx, trip)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new trip", slog.String("id", created.ID))
	return created, nil
}

// List возвращает все поездки пользователя. Чужие поездки не видны никогда.
func (s *Service) List(ctx context.Context, userUID string) ([]*models.Trip, error) {
	return s.repo.ListTripsByUser(ctx, userUID)
}
