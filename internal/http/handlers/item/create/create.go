// Package create реализует HTTP-обработчик создания записи под-ресурса
// под конкретной поездкой. Один дженерик-обработчик обслуживает расписание,
// список вещей, расходы и заметки: конкретику задают тип запроса R,
// тип записи T и функция конверсии между ними.
//
// Поля trip и user из полезной нагрузки игнорируются — владельца штампует
// сервис после проверки прав на родительскую поездку.
package create

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

// Service описывает интерфейс бизнес-логики создания записи под поездкой.
type Service[T any] interface {
	Create(ctx context.Context, tripID, userUID string, item T) (T, error)
}

// Handler обрабатывает запросы на создание записи под-ресурса.
type Handler[R, T any] struct {
	log      *slog.Logger
	service  Service[T]
	validate *validator.Validate
	resource string    // ключ данных в ответе, например "expense"
	convert  func(R) T // конверсия запроса в доменную модель
}

// New создает новый Handler для пары типов R (запрос) и T (запись).
func New[R, T any](log *slog.Logger, service Service[T], resource string, convert func(R) T) *Handler[R, T] {
	return &Handler[R, T]{
		log:      log,
		service:  service,
		validate: validator.New(),
		resource: resource,
		convert:  convert,
	}
}

func (h *Handler[R, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("resource", h.resource),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
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

	tripID := chi.URLParam(r, "tripId")
	created, err := h.service.Create(r.Context(), tripID, userUID, h.convert(req))
	if err != nil {
		if errors.Is(err, tripitem.ErrNotFound) {
			log.Info("trip not found for caller", slog.String("trip", tripID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail("Trip not found."))
			return
		}
		log.Error("failed to create item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not create "+h.resource))
		return
	}

	log.Info("created item")
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.Success(map[string]any{
		h.resource: created,
	}))
}
