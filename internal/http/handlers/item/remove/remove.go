// Package remove реализует HTTP-обработчик удаления записи под-ресурса
// по её собственному ID. Повторное удаление того же ID даёт 404, а не второй 204.
package remove

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

// Service описывает интерфейс бизнес-логики удаления записи.
type Service interface {
	Delete(ctx context.Context, id, userUID string) error
}

// Handler обрабатывает запросы на удаление записи под-ресурса.
type Handler struct {
	log      *slog.Logger
	service  Service
	resource string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service, resource string) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		resource: resource,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.remove"

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

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id, userUID); err != nil {
		if errors.Is(err, tripitem.ErrNotFound) {
			log.Info("item not found for caller", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail("Not found."))
			return
		}
		log.Error("failed to delete item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not delete "+h.resource))
		return
	}

	log.Info("deleted item", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
