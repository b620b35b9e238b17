package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/auth/google"
	"github.com/nmoreno/blogapi/internal/config"
	"github.com/nmoreno/blogapi/internal/db"
	"github.com/nmoreno/blogapi/internal/server/handlers"
	"github.com/nmoreno/blogapi/internal/server/middleware"
)

// NewRouter assembles the full route tree: public auth endpoints, the
// authenticated blog API under /api, and the health probe.
func NewRouter(cfg config.Config, gdb *gorm.DB, pool db.Pinger, logger *logrus.Logger) (http.Handler, error) {
	limiter, err := middleware.NewRateLimiter()
	if err != nil {
		return nil, err
	}

	oauth := &google.Service{
		DB:           gdb,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		SecretKey:    cfg.SecretKey,
		TokenTTL:     cfg.AccessTokenTTL(),
		FrontendURL:  cfg.FrontendLoginURL,
		Logger:       logger,
	}

	requireUser := middleware.RequireUser(gdb, cfg.SecretKey)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.ResponseTime(logger))

	r.Get("/health", handlers.Health(pool))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(limiter.Limit("register")).Post("/register", handlers.Register(gdb))
			r.With(limiter.Limit("me")).Post("/login", handlers.Login(gdb, cfg.SecretKey, cfg.AccessTokenTTL()))
			r.With(requireUser, limiter.Limit("me")).Get("/me", handlers.Me())

			r.Get("/google/login", oauth.HandleLogin)
			r.Get("/google/callback", oauth.HandleCallback)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(limiter.Limit("register")).Post("/", handlers.Register(gdb))
			r.With(limiter.Limit("read")).Get("/", handlers.ListUsers(gdb))
			r.With(requireUser, limiter.Limit("me")).Get("/me", handlers.Me())
			r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
				Get("/deleted/", handlers.ListDeletedUsers(gdb))
			r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
				Get("/admin-only", handlers.AdminOnly())

			r.Route("/{userID}", func(r chi.Router) {
				r.With(limiter.Limit("read")).Get("/", handlers.GetUser(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Patch("/", handlers.UpdateUser(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Delete("/", handlers.DeleteUser(gdb))
				r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
					Post("/restore", handlers.RestoreUser(gdb))
				r.With(limiter.Limit("read")).Get("/posts", handlers.ListUserPosts(gdb))
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.With(requireUser, limiter.Limit("mutate")).Post("/", handlers.CreatePost(gdb))
			r.With(limiter.Limit("read")).Get("/", handlers.ListPosts(gdb))
			r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
				Get("/deleted/", handlers.ListDeletedPosts(gdb))

			r.Route("/{postID}", func(r chi.Router) {
				r.With(limiter.Limit("read")).Get("/", handlers.GetPost(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Patch("/", handlers.UpdatePost(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Delete("/", handlers.DeletePost(gdb))
				r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
					Post("/restore", handlers.RestorePost(gdb))

				r.With(requireUser, limiter.Limit("mutate")).Post("/comments", handlers.CreateComment(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Post("/tags/{tagID}", handlers.AddTagToPost(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Delete("/tags/{tagID}", handlers.RemoveTagFromPost(gdb))
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.With(requireUser, limiter.Limit("mutate")).Post("/", handlers.CreateTag(gdb))
			r.With(limiter.Limit("read")).Get("/", handlers.ListTags(gdb))
			r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
				Get("/deleted/", handlers.ListDeletedTags(gdb))

			r.Route("/{tagID}", func(r chi.Router) {
				r.With(limiter.Limit("read")).Get("/", handlers.GetTag(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Patch("/", handlers.UpdateTag(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Delete("/", handlers.DeleteTag(gdb))
				r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
					Post("/restore", handlers.RestoreTag(gdb))
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
				Get("/deleted/", handlers.ListDeletedComments(gdb))

			r.Route("/{commentID}", func(r chi.Router) {
				r.With(limiter.Limit("read")).Get("/", handlers.GetComment(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Put("/", handlers.UpdateComment(gdb))
				r.With(requireUser, limiter.Limit("mutate")).Delete("/", handlers.DeleteComment(gdb))
				r.With(requireUser, middleware.RequireAdmin, limiter.Limit("admin")).
					Post("/restore", handlers.RestoreComment(gdb))
			})
		})
	})

	return r, nil
}
