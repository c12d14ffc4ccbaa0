// Package ideas реализует публичный HTTP-обработчик каталога направлений.
//
// Один маршрут обслуживает два режима: с параметром search выполняется поиск
// по подстроке, без него — сезонные рекомендации (сначала внутренние
// направления, затем международные). Пустое значение search — это всё ещё
// режим поиска.
package ideas

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/sl"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

// Service описывает интерфейс движка рекомендаций направлений.
type Service interface {
	Search(ctx context.Context, query string) ([]*models.Destination, error)
	Seasonal(ctx context.Context) ([]*models.Destination, error)
}

// Handler обрабатывает публичные запросы каталога направлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Каталог направлений
// @Description Поиск направлений по подстроке либо сезонные рекомендации, если параметр search не задан.
// @Tags Destinations
// @Produce  json
// @Param search query string false "Подстрока для поиска по имени, стране и категориям"
// @Success 200 {object} response.Response "Список направлений"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /destinations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.destination.ideas"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var (
		res []*models.Destination
		err error
	)
	if r.URL.Query().Has("search") {
		query := r.URL.Query().Get("search")
		log.Info("searching destinations", slog.String("query", query))
		res, err = h.service.Search(r.Context(), query)
	} else {
		log.Info("listing seasonal destinations")
		res, err = h.service.Seasonal(r.Context())
	}
	if err != nil {
		log.Error("failed to list destinations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail("could not list destinations"))
		return
	}

	log.Info("listed destinations", slog.Int("count", len(res)))
	render.JSON(w, r, response.SuccessList(len(res), map[string]any{
		"destinations": res,
	}))
}
