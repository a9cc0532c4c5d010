package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/cmtrswtng/taskflow/internal/config"
	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/events"
	"github.com/cmtrswtng/taskflow/internal/platform/mongo"
	"github.com/cmtrswtng/taskflow/internal/platform/rabbitmq"
	"github.com/cmtrswtng/taskflow/internal/service"
)

const connectTimeout = 10 * time.Second

// application holds the wired dependencies of the running server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	mongoClient  *mongodriver.Client
	rabbit       *rabbitmq.Publisher // nil when no broker is configured
	taskService  service.TaskService
	stopConsumer context.CancelFunc
}

// newApplication connects the collaborators and builds the task service.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to MongoDB", "database", cfg.Mongo.Database)

	taskStore := mongo.NewTaskStore(client, cfg.Mongo.Database, logger)

	// Queued task actions are drained and logged so the queue never grows
	// unbounded.
	auditor := events.HandlerFunc(func(_ context.Context, event *events.TaskEvent) error {
		logger.Info("task action processed",
			"task_id", event.TaskID,
			"action", event.Action,
			"timestamp", event.Timestamp)
		return nil
	})

	var rabbit *rabbitmq.Publisher
	var publisher events.Publisher
	var stopConsumer context.CancelFunc
	if cfg.RabbitMQ.URL != "" {
		rabbit, err = rabbitmq.Connect(cfg.RabbitMQ, logger)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		publisher = rabbit
		logger.Info("connected to RabbitMQ",
			"exchange", cfg.RabbitMQ.Exchange,
			"queue", cfg.RabbitMQ.Queue)

		var consumeCtx context.Context
		consumeCtx, stopConsumer = context.WithCancel(context.Background())
		go func() {
			if err := rabbit.Consume(consumeCtx, auditor); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("event consumer stopped", "error", err)
			}
		}()
	} else {
		local := events.NewLocalPublisher(logger)
		local.RegisterHandler(auditor)
		publisher = local
		logger.Warn("no RabbitMQ URL configured, dispatching events in-process")
	}

	limits := domain.FieldLimits{
		TitleMax:       cfg.Limits.TitleMax,
		DescriptionMax: cfg.Limits.DescriptionMax,
	}
	taskService, err := service.NewTaskService(taskStore, publisher, limits, logger)
	if err != nil {
		if stopConsumer != nil {
			stopConsumer()
		}
		if rabbit != nil {
			_ = rabbit.Close()
		}
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		mongoClient:  client,
		rabbit:       rabbit,
		taskService:  taskService,
		stopConsumer: stopConsumer,
	}, nil
}

// cleanup releases the application's external connections.
func (app *application) cleanup() {
	if app.stopConsumer != nil {
		app.stopConsumer()
	}
	if app.rabbit != nil {
		if err := app.rabbit.Close(); err != nil {
			app.logger.Error("failed to close RabbitMQ connection", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := app.mongoClient.Disconnect(ctx); err != nil {
		app.logger.Error("failed to disconnect from MongoDB", "error", err)
	}
}
