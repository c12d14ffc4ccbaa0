// Package create реализует HTTP-обработчик добавления направления в каталог.
// Запись каталога общая для всех пользователей, владельца у неё нет.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/sl"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
	"github.com/magabrotheeeer/tripx-backend/internal/services/destination"
)

// Service описывает интерфейс бизнес-логики создания направления.
type Service interface {
	Create(ctx context.Context, req models.DummyDestination) (*models.Destination, error)
}

// Handler обрабатывает запросы на добавление направления.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.destination.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyDestination
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
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

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Fail("unauthorized"))
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, destination.ErrInvalidVocabulary) {
			log.Info("rejected destination", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Fail(err.Error()))
			return
		}
		log.Error("failed to create destination", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not create destination"))
		return
	}

	log.Info("created destination", slog.String("id", created.ID), slog.String("username", username))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.Success(map[string]any{
		"destination": created,
	}))
}
