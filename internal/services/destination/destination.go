// Package destination содержит бизнес-логику публичного каталога направлений:
// поиск, сезонные рекомендации и административное создание записей.
package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tripx-backend/internal/lib/season"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// ErrInvalidVocabulary — категория или сезон вне фиксированного словаря.
var ErrInvalidVocabulary = errors.New("value outside of allowed vocabulary")

// Repository определяет методы для работы с каталогом направлений в хранилище.
type Repository interface {
	// CreateDestination сохраняет новое направление.
	CreateDestination(ctx context.Context, d *models.Destination) (*models.Destination, error)
	// SearchDestinations ищет направления по подстроке.
	SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error)
	// ListDestinationsBySeason возвращает направления сезона, внутренние или международные.
	ListDestinationsBySeason(ctx context.Context, current season.Season, domestic bool) ([]*models.Destination, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует движок рекомендаций каталога направлений.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Search ищет направления по подстроке в имени, стране или категориях.
// Порядок выдачи — порядок хранилища, без дополнительного ранжирования.
func (s *Service) Search(ctx context.Context, query string) ([]*models.Destination, error) {
	return s.repo.SearchDestinations(ctx, query)
}

// Seasonal возвращает направления текущего сезона: сначала внутренние,
// затем международные, каждая часть в порядке хранилища, без дедупликации.
// Сезон определяется фиксированной календарной таблицей; результат кешируется
// на час под ключом сезона.
func (s *Service) Seasonal(ctx context.Context) ([]*models.Destination, error) {
	current := season.Current(s.now())
	cacheKey := fmt.Sprintf("destinations:season:%s", current)

	var cached []*models.Destination
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read destinations cache", slog.String("key", cacheKey),
			slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	domestic, err := s.repo.ListDestinationsBySeason(ctx, current, true)
	if err != nil {
		return nil, err
	}
	international, err := s.repo.ListDestinationsBySeason(ctx, current, false)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Destination, 0, len(domestic)+len(international))
	result = append(result, domestic...)
	result = append(result, international...)

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache seasonal destinations", slog.String("key", cacheKey),
			slog.Any("err", err))
	}
	return result, nil
}

// Create добавляет направление в каталог. Категории и сезоны проверяются
// по фиксированным словарям; владелец у записи отсутствует.
func (s *Service) Create(ctx context.Context, req models.DummyDestination) (*models.Destination, error) {
	for _, c := range req.Categories {
		if !models.ValidDestinationCategory(c) {
			return nil, fmt.Errorf("%w: category %q", ErrInvalidVocabulary, c)
		}
	}
	for _, v := range req.BestSeasons {
		if !season.Valid(v) {
			return nil, fmt.Errorf("%w: season %q", ErrInvalidVocabulary, v)
		}
	}

	created, err := s.repo.CreateDestination(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}
	s.log.Info("created new destination", slog.String("id", created.ID))

	for _, v := range created.BestSeasons {
		cacheKey := fmt.Sprintf("destinations:season:%s", v)
		if err := s.cache.Invalidate(cacheKey); err != nil {
			s.log.Warn("failed to invalidate destinations cache",
				slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return created, nil
}
