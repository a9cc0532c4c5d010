package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/cmtrswtng/taskflow/internal/api"
	apiMiddleware "github.com/cmtrswtng/taskflow/internal/api/middleware"
	"github.com/cmtrswtng/taskflow/internal/api/shared"
	"github.com/cmtrswtng/taskflow/internal/graphql"
)

// setupRouter configures the router with both API surfaces and the health
// endpoint.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	if app.config.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeout) * time.Second))
	}

	taskHandler := api.NewTaskHandler(app.taskService)

	r.Route(app.config.API.Prefix, func(r chi.Router) {
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
	})

	schema, err := graphql.NewSchema(app.taskService)
	if err != nil {
		// The schema is static; a build failure is a programming error.
		panic(err)
	}
	r.Handle(app.config.GraphQL.Path, graphql.NewHandler(&schema, app.config.GraphQL.Playground))

	r.Get("/health", app.handleHealth)

	return r
}

// healthResponse reports the liveness of the service and its collaborators.
type healthResponse struct {
	Status   string `json:"status"`
	MongoDB  bool   `json:"mongodb"`
	RabbitMQ bool   `json:"rabbitmq"`
}

func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	health := healthResponse{
		Status:   "ok",
		MongoDB:  app.mongoClient.Ping(ctx, readpref.Primary()) == nil,
		RabbitMQ: app.rabbit == nil || app.rabbit.IsConnected(),
	}

	status := http.StatusOK
	if !health.MongoDB || !health.RabbitMQ {
		health.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	shared.RespondWithJSON(w, r, status, health)
}
