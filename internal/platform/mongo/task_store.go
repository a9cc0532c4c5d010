package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/store"
)

const tasksCollection = "tasks"

// taskDocument is the storage shape of a task. Status is stored in the
// REST/storage vocabulary, not the canonical one.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	DueDate     time.Time          `bson:"dueDate"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
	Version     int64              `bson:"version"`
}

// TaskStore is the MongoDB implementation of store.TaskStore.
type TaskStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Compile-time check that TaskStore satisfies the contract.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore backed by the "tasks" collection of the
// given database.
func NewTaskStore(client *mongo.Client, database string, logger *slog.Logger) *TaskStore {
	return &TaskStore{
		coll:   client.Database(database).Collection(tasksCollection),
		logger: logger.With("component", "mongo_task_store"),
	}
}

// Create inserts a new task document, assigning ID, timestamps and an
// initial version of 1.
func (s *TaskStore) Create(ctx context.Context, params store.CreateTaskParams) (*domain.Task, error) {
	now := time.Now().UTC()
	doc := taskDocument{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status.RESTValue(),
		DueDate:     params.DueDate.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}

	result, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, store.NewStoreError("task", "create", "insert failed", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, store.NewStoreError("task", "create", "unexpected inserted ID type", nil)
	}
	doc.ID = oid

	s.logger.Debug("task created", "task_id", oid.Hex())

	return docToTask(&doc)
}

// GetByID retrieves a task by its hex ObjectID. A malformed ID can never
// match a stored document and is reported as ErrTaskNotFound.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrTaskNotFound
	}

	var doc taskDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrTaskNotFound
		}
		return nil, store.NewStoreError("task", "get", "find failed", err)
	}

	return docToTask(&doc)
}

// List retrieves tasks ordered most-recently-created first, optionally
// filtered by status.
func (s *TaskStore) List(ctx context.Context, status *domain.Status) ([]*domain.Task, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = status.RESTValue()
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, store.NewStoreError("task", "list", "find failed", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			s.logger.Warn("failed to close cursor", "error", err)
		}
	}()

	tasks := make([]*domain.Task, 0)
	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, store.NewStoreError("task", "list", "decode failed", err)
		}
		task, err := docToTask(&doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := cursor.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "cursor failed", err)
	}

	return tasks, nil
}

// Update applies a partial update as a single atomic find-and-modify: the
// field merge, the UpdatedAt stamp and the version increment happen in one
// step. Nil patch fields are left untouched.
func (s *TaskStore) Update(ctx context.Context, id string, patch store.TaskPatch) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrTaskNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = patch.Status.RESTValue()
	}

	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrTaskNotFound
		}
		return nil, store.NewStoreError("task", "update", "find and update failed", err)
	}

	s.logger.Debug("task updated", "task_id", id, "version", doc.Version)

	return docToTask(&doc)
}

// docToTask maps a storage document to the domain entity, translating the
// stored status string back to the canonical vocabulary.
func docToTask(doc *taskDocument) (*domain.Task, error) {
	status, err := domain.ParseRESTStatus(doc.Status)
	if err != nil {
		return nil, store.NewStoreError("task", "map", "unknown stored status "+doc.Status, store.ErrInvalidEntity)
	}

	return &domain.Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Status:      status,
		DueDate:     doc.DueDate,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Version:     doc.Version,
	}, nil
}
