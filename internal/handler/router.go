package handler

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/handler/middlewares"
	"github.com/kazakovdmitriy/go-idioms/internal/handler/users"
)

func SetupHandler(
	usersHandler *users.UsersHandler,
	metricsHandler http.Handler,
	activeRequests *sync.WaitGroup,
	shutdownChan chan struct{},
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	setupMiddlewares(r, activeRequests, shutdownChan, log)
	setupUsersRoutes(r, usersHandler)

	r.Handle("/metrics", metricsHandler)

	return r
}

func setupMiddlewares(
	r chi.Router,
	activeRequests *sync.WaitGroup,
	shutdownChan chan struct{},
	log *zap.Logger,
) {
	r.Use(middleware.RequestID)
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.TrackActiveRequests(activeRequests, shutdownChan, log))
}

// Users
func setupUsersRoutes(r chi.Router, usersHandler *users.UsersHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", usersHandler.ListUsers)

		r.Route("/{username}", func(r chi.Router) {
			r.Post("/", usersHandler.Register)
			r.Delete("/", usersHandler.Unregister)
			r.Get("/{field}", usersHandler.GetField)
		})
	})
}
