// Package tripitem реализует охрану владения для под-ресурсов поездки.
//
// Один дженерик-сервис обслуживает все четыре типа записей (расписание,
// список вещей, расходы, заметки): list и create проверяют владельца через
// родительскую поездку, update и delete — через денормализованное поле user
// самой записи, без повторного чтения поездки.
//
// Отсутствующая запись и чужая запись неразличимы для вызывающего:
// обе дают ErrNotFound, чтобы не подтверждать существование чужих данных.
package tripitem

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/tripx-backend/internal/models"
	"github.com/magabrotheeeer/tripx-backend/internal/storage/repository"
)

// ErrNotFound — запись отсутствует либо принадлежит другому пользователю.
var ErrNotFound = errors.New("not found")

// Item — ограничение на тип записи: любой под-ресурс, отдающий общие поля.
type Item interface {
	Meta() *models.ItemMeta
}

// Repository определяет методы хранилища для одного типа под-ресурса.
type Repository[T Item] interface {
	// CreateItem сохраняет новую запись и возвращает её с выставленным ID.
	CreateItem(ctx context.Context, item T) (T, error)
	// ReadItem возвращает запись по ID.
	ReadItem(ctx context.Context, id string) (T, error)
	// UpdateItem сохраняет изменённые поля записи.
	UpdateItem(ctx context.Context, item T) (T, error)
	// DeleteItem удаляет запись и возвращает количество удалённых строк.
	DeleteItem(ctx context.Context, id string) (int, error)
	// ListItemsByTrip возвращает все записи поездки.
	ListItemsByTrip(ctx context.Context, tripID string) ([]T, error)
}

// TripReader отдаёт поездку для проверки владельца.
type TripReader interface {
	ReadTrip(ctx context.Context, id string) (*models.Trip, error)
}

// Service реализует логику доступа к под-ресурсам одного типа.
type Service[T Item] struct {
	trips TripReader
	items Repository[T]
	log   *slog.Logger
}

// NewService создает новый экземпляр Service для типа T.
func NewService[T Item](trips TripReader, items Repository[T], log *slog.Logger) *Service[T] {
	return &Service[T]{
		trips: trips,
		items: items,
		log:   log,
	}
}

// guardTrip проверяет, что поездка существует и принадлежит вызывающему.
func (s *Service[T]) guardTrip(ctx context.Context, tripID, userUID string) error {
	trip, err := s.trips.ReadTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if trip.UserUID != userUID {
		return ErrNotFound
	}
	return nil
}

// List возвращает все записи поездки после проверки владельца поездки.
// Дополнительная проверка каждой записи не нужна: при создании запись
// получает того же владельца, что и поездка.
func (s *Service[T]) List(ctx context.Context, tripID, userUID string) ([]T, error) {
	if err := s.guardTrip(ctx, tripID, userUID); err != nil {
		return nil, err
	}
	return s.items.ListItemsByTrip(ctx, tripID)
}

// Create сохраняет новую запись под поездкой вызывающего. Поля trip и user
// штампуются здесь, значения из полезной нагрузки затираются — подделать
// владельца через тело запроса нельзя.
func (s *Service[T]) Create(ctx context.Context, tripID, userUID string, item T) (T, error) {
	var zero T
	if err := s.guardTrip(ctx, tripID, userUID); err != nil {
		return zero, err
	}

	meta := item.Meta()
	meta.TripID = tripID
	meta.UserUID = userUID

	created, err := s.items.CreateItem(ctx, item)
	if err != nil {
		return zero, err
	}
	s.log.Info("created trip item", slog.String("id", created.Meta().ID),
		slog.String("trip", tripID))
	return created, nil
}

// Update применяет частичное обновление к записи вызывающего.
// Владелец определяется по полю user самой записи. Повторное применение
// одного и того же патча даёт то же итоговое состояние.
func (s *Service[T]) Update(ctx context.Context, id, userUID string, apply func(T)) (T, error) {
	var zero T
	item, err := s.readOwned(ctx, id, userUID)
	if err != nil {
		return zero, err
	}

	apply(item)
	return s.items.UpdateItem(ctx, item)
}

// Delete удаляет запись вызывающего. Повторное удаление даёт ErrNotFound.
func (s *Service[T]) Delete(ctx context.Context, id, userUID string) error {
	if _, err := s.readOwned(ctx, id, userUID); err != nil {
		return err
	}

	count, err := s.items.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	s.log.Info("deleted trip item", slog.String("id", id))
	return nil
}

func (s *Service[T]) readOwned(ctx context.Context, id, userUID string) (T, error) {
	var zero T
	item, err := s.items.ReadItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	if item.Meta().UserUID != userUID {
		return zero, ErrNotFound
	}
	return item, nil
}
