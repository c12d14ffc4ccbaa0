// Package list реализует HTTP-обработчик получения всех записей одного типа
// под-ресурса для конкретной поездки. Один дженерик-обработчик обслуживает
// расписание, список вещей, расходы и заметки.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/sl"
	"github.com/magabrotheeeer/tripx-backend/internal/services/tripitem"
)

// Service описывает интерфейс бизнес-логики получения записей поездки.
type Service[T any] interface {
	List(ctx context.Context, tripID, userUID string) ([]T, error)
}

// Handler обрабатывает запросы списка записей под-ресурса.
type Handler[T any] struct {
	log      *slog.Logger
	service  Service[T]
	resource string // ключ данных в ответе, например "expenses"
}

// New создает новый Handler для типа записи T.
func New[T any](log *slog.Logger, service Service[T], resource string) *Handler[T] {
	return &Handler[T]{
		log:      log,
		service:  service,
		resource: resource,
	}
}

func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("resource", h.resource),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Fail("unauthorized"))
		return
	}

	tripID := chi.URLParam(r, "tripId")
	res, err := h.service.List(r.Context(), tripID, userUID)
	if err != nil {
		if errors.Is(err, tripitem.ErrNotFound) {
			log.Info("trip not found for caller", slog.String("trip", tripID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail("No trip found with that ID for the current user."))
			return
		}
		log.Error("failed to list items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not list "+h.resource))
		return
	}

	log.Info("listed items", slog.Int("count", len(res)))
	render.JSON(w, r, response.SuccessList(len(res), map[string]any{
		h.resource: res,
	}))
}
