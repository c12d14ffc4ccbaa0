// Package update реализует HTTP-обработчик частичного обновления записи
// под-ресурса по её собственному ID. Владелец проверяется по полю user
// самой записи; поля trip и user патчем не изменяются.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/sl"
	"github.com/magabrotheeeer/tripx-backend/internal/services/tripitem"
)

// Service описывает интерфейс бизнес-логики обновления записи.
type Service[T any] interface {
	Update(ctx context.Context, id, userUID string, apply func(T)) (T, error)
}

// Handler обрабатывает запросы на частичное обновление записи под-ресурса.
type Handler[P, T any] struct {
	log      *slog.Logger
	service  Service[T]
	validate *validator.Validate
	resource string            // ключ данных в ответе, например "expense"
	apply    func(P) func(T)   // превращает патч в функцию применения к записи
}

// New создает новый Handler для пары типов P (патч) и T (запись).
func New[P, T any](log *slog.Logger, service Service[T], resource string, apply func(P) func(T)) *Handler[P, T] {
	return &Handler[P, T]{
		log:      log,
		service:  service,
		validate: validator.New(),
		resource: resource,
		apply:    apply,
	}
}

func (h *Handler[P, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("resource", h.resource),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch P
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return
	}

	if err := h.validate.Struct(patch); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Fail("unauthorized"))
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.service.Update(r.Context(), id, userUID, h.apply(patch))
	if err != nil {
		if errors.Is(err, tripitem.ErrNotFound) {
			log.Info("item not found for caller", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail(notFoundMessage(h.resource)))
			return
		}
		log.Error("failed to update item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not update "+h.resource))
		return
	}

	log.Info("updated item", slog.String("id", id))
	render.JSON(w, r, response.Success(map[string]any{
		h.resource: updated,
	}))
}

func notFoundMessage(resource string) string {
	return strTitle(resource) + " not found."
}

func strTitle(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
