// Package tripx предоставляет маршруты для основного приложения.
package tripx

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tripx-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/tripx-backend/internal/http/handlers/auth/register"
	destinationcreate "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/destination/create"
	"github.com/magabrotheeeer/tripx-backend/internal/http/handlers/destination/ideas"
	"github.com/magabrotheeeer/tripx-backend/internal/http/handlers/health"
	itemcreate "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/item/create"
	itemlist "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/item/list"
	itemremove "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/item/remove"
	itemupdate "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/item/update"
	tripcreate "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/trip/create"
	triplist "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/trip/list"
	"github.com/magabrotheeeer/tripx-backend/internal/http/handlers/user/me"
	userremove "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/tripx-backend/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/tripx-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
	authservice "github.com/magabrotheeeer/tripx-backend/internal/services/auth"
	destinationservice "github.com/magabrotheeeer/tripx-backend/internal/services/destination"
	tripservice "github.com/magabrotheeeer/tripx-backend/internal/services/trip"
	"github.com/magabrotheeeer/tripx-backend/internal/services/tripitem"
	userservice "github.com/magabrotheeeer/tripx-backend/internal/services/user"
)

// Services — все сервисы, нужные маршрутам приложения.
type Services struct {
	Auth        *authservice.Service
	User        *userservice.Service
	Trip        *tripservice.Service
	Schedule    *tripitem.Service[*models.ScheduleItem]
	Packing     *tripitem.Service[*models.PackingItem]
	Expense     *tripitem.Service[*models.Expense]
	Note        *tripitem.Service[*models.Note]
	Destination *destinationservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, db health.Service, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(10), 20)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/destinations", ideas.New(logger, s.Destination).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Post("/trips", tripcreate.New(logger, s.Trip).ServeHTTP)
			r.Get("/trips", triplist.New(logger, s.Trip).ServeHTTP)

			itemRoutes(r, logger, s.Schedule, "schedule", "schedule_item", "schedule_items",
				models.DummySchedule.ToModel, models.PatchSchedule.Apply)
			itemRoutes(r, logger, s.Packing, "packing-list", "packing_item", "packing_items",
				models.DummyPacking.ToModel, models.PatchPacking.Apply)
			itemRoutes(r, logger, s.Expense, "expenses", "expense", "expenses",
				models.DummyExpense.ToModel, models.PatchExpense.Apply)
			itemRoutes(r, logger, s.Note, "notes", "note", "notes",
				models.DummyNote.ToModel, models.PatchNote.Apply)

			r.Get("/users/me", me.New(logger, s.User).ServeHTTP)
			r.Patch("/users/me", userupdate.New(logger, s.User).ServeHTTP)
			r.Delete("/users/me", userremove.New(logger, s.User).ServeHTTP)

			r.With(middlewarectx.RequireRole("admin", logger)).
				Post("/destinations", destinationcreate.New(logger, s.Destination).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// itemRoutes вешает четыре маршрута одного под-ресурса поездки: список и
// создание идут через родительскую поездку, обновление и удаление — по ID
// самой записи. path — сегмент URL, singular и plural — ключи данных в ответах.
func itemRoutes[R, P any, T tripitem.Item](r chi.Router, logger *slog.Logger, svc *tripitem.Service[T],
	path, singular, plural string, convert func(R) T, apply func(P, T)) {
	r.Get("/"+path+"/trip/{tripId}", itemlist.New[T](logger, svc, plural).ServeHTTP)
	r.Post("/"+path+"/trip/{tripId}", itemcreate.New(logger, svc, singular, convert).ServeHTTP)
	r.Patch("/"+path+"/{id}", itemupdate.New(logger, svc, singular, bindPatch(apply)).ServeHTTP)
	r.Delete("/"+path+"/{id}", itemremove.New(logger, svc, singular).ServeHTTP)
}

// bindPatch превращает метод применения патча в функцию, ожидаемую обработчиком обновления.
func bindPatch[P, T any](apply func(P, T)) func(P) func(T) {
	return func(p P) func(T) {
		return func(t T) { apply(p, t) }
	}
}
