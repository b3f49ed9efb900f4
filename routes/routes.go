package routes

import (
	"net/http"

	"github.com/Dosada05/sports-league-api/docs"
	"github.com/Dosada05/sports-league-api/handlers"
	"github.com/Dosada05/sports-league-api/middleware"
	"github.com/Dosada05/sports-league-api/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes настраивает все маршруты API.
// Публичные чтения доступны без токена, записи закрыты по ролям:
// admin и coach правят данные лиг, роли пользователей меняет только admin.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	leagueHandler *handlers.LeagueHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	statisticHandler *handlers.StatisticHandler,
	liveHandler *handlers.LiveHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	// Фронтенд шлёт пути в Django-стиле с завершающим слешем.
	router.Use(chiMiddleware.StripSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))
	editors := middleware.Authorize(models.RoleAdmin, models.RoleCoach)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	router.Post("/users/register", authHandler.Register)
	router.Post("/users/login", authHandler.Login)

	router.Route("/users", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/", userHandler.ListUsers)
		r.Get("/me", userHandler.Me)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Patch("/{id}/role", userHandler.UpdateRole)
		})
	})

	router.Route("/leagues", func(r chi.Router) {
		r.Get("/", leagueHandler.List)
		r.Get("/{id}", leagueHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, editors)
			r.Post("/", leagueHandler.Create)
			r.Put("/{id}", leagueHandler.Update)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Delete("/{id}", leagueHandler.Delete)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/{id}", teamHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, editors)
			r.Post("/", teamHandler.Create)
			r.Put("/{id}", teamHandler.Update)
			r.Post("/{id}/logo", teamHandler.UploadLogo)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Delete("/{id}", teamHandler.Delete)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Get("/{id}", playerHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, editors)
			r.Post("/", playerHandler.Create)
			r.Put("/{id}", playerHandler.Update)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Delete("/{id}", playerHandler.Delete)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Get("/{id}", matchHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, editors)
			r.Post("/", matchHandler.Create)
			r.Put("/{id}", matchHandler.Update)
		})
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Delete("/{id}", matchHandler.Delete)
		})
	})

	router.Route("/match-statistics", func(r chi.Router) {
		r.Get("/", statisticHandler.List)
		r.Get("/team-stats", statisticHandler.TeamStats)
		r.Get("/match/{id}", statisticHandler.ListByMatch)
		r.Get("/player/{id}", statisticHandler.ListByPlayer)
		r.Get("/{id}", statisticHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, editors)
			r.Post("/", statisticHandler.Create)
			r.Put("/{id}", statisticHandler.Update)
			r.Delete("/{id}", statisticHandler.Delete)
		})
	})

	router.Get("/ws/matches/{id}", liveHandler.ServeWs)

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(docs.OpenAPI)
	})
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
