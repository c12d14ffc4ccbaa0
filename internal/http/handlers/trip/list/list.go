// Package list реализует HTTP-обработчик получения всех поездок текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/sl"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики получения поездок.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Trip, error)
}

// Handler обрабатывает запросы списка поездок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список поездок
// @Description Возвращает все поездки текущего пользователя.
// @Tags Trips
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список поездок"
// @Failure 401 {object} response.Response "Пользователь не авторизован"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /trips [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trip.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Fail("unauthorized"))
		return
	}

	trips, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list trips", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not list trips"))
		return
	}

	log.Info("listed trips", slog.Int("count", len(trips)))
	render.JSON(w, r, response.SuccessList(len(trips), map[string]any{
		"trips": trips,
	}))
}
