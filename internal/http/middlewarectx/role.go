package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tripx-backend/internal/http/response"
)

// RequireRole пропускает запрос дальше, только если роль из JWT совпадает
// с требуемой. Вешается после JWTMiddleware на админские маршруты.
func RequireRole(role string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			got, ok := r.Context().Value(Role).(string)
			if !ok || got != role {
				log.Error("insufficient role", slog.String("required", role))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Fail("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
