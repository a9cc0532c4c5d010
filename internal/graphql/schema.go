// Package graphql implements the GraphQL surface of the task service. It
// invokes the same four lifecycle operations as the REST surface and
// differs only in its status vocabulary, translated at this edge.
package graphql

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/service"
)

// errTaskNotFound is the caller-facing GraphQL error for a missing task.
var errTaskNotFound = errors.New("Task not found")

// NewSchema builds the executable schema over the given task service.
func NewSchema(taskService service.TaskService) (graphql.Schema, error) {
	statusEnum := graphql.NewEnum(graphql.EnumConfig{
		Name:        "TaskStatus",
		Description: "Status of a task.",
		Values: graphql.EnumValueConfigMap{
			"OPEN":        &graphql.EnumValueConfig{Value: string(domain.StatusOpen)},
			"IN_PROGRESS": &graphql.EnumValueConfig{Value: string(domain.StatusInProgress)},
			"COMPLETED":   &graphql.EnumValueConfig{Value: string(domain.StatusCompleted)},
			"EXPIRED":     &graphql.EnumValueConfig{Value: string(domain.StatusExpired)},
		},
	})

	taskType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"status":      &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
			"dueDate":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"version":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	createTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"status":      &graphql.InputObjectFieldConfig{Type: statusEnum},
		},
	})

	updateTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: statusEnum},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					task, err := taskService.Get(p.Context, id)
					if err != nil {
						return nil, resolveError(err)
					}
					return taskToGraphQL(task), nil
				},
			},
			"getTasks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: statusEnum},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := statusArgToREST(p.Args["status"])
					if err != nil {
						return nil, err
					}
					tasks, err := taskService.List(p.Context, filter)
					if err != nil {
						return nil, resolveError(err)
					}
					result := make([]map[string]interface{}, 0, len(tasks))
					for _, task := range tasks {
						result = append(result, taskToGraphQL(task))
					}
					return result, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					status, err := statusArgToREST(input["status"])
					if err != nil {
						return nil, err
					}
					task, err := taskService.Create(p.Context, service.CreateTaskInput{
						Title:       stringArg(input["title"]),
						Description: stringArg(input["description"]),
						DueDate:     stringArg(input["dueDate"]),
						Status:      status,
					})
					if err != nil {
						return nil, resolveError(err)
					}
					return taskToGraphQL(task), nil
				},
			},
			"updateTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					input, _ := p.Args["input"].(map[string]interface{})

					var update service.UpdateTaskInput
					if title, ok := input["title"].(string); ok {
						update.Title = &title
					}
					if description, ok := input["description"].(string); ok {
						update.Description = &description
					}
					if raw, ok := input["status"]; ok && raw != nil {
						status, err := statusArgToREST(raw)
						if err != nil {
							return nil, err
						}
						update.Status = &status
					}

					task, err := taskService.Update(p.Context, id, update)
					if err != nil {
						return nil, resolveError(err)
					}
					return taskToGraphQL(task), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// statusArgToREST translates an optional enum argument (canonical name)
// into the service's REST vocabulary; absent means no filter/default.
func statusArgToREST(raw interface{}) (string, error) {
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", nil
	}
	status, err := domain.ParseGraphQLStatus(value)
	if err != nil {
		return "", err
	}
	return status.RESTValue(), nil
}

func stringArg(raw interface{}) string {
	value, _ := raw.(string)
	return value
}

// resolveError maps service errors to caller-facing GraphQL errors without
// leaking internal detail for system-level failures.
func resolveError(err error) error {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, service.ErrInvalidTaskID):
		return err
	default:
		return errors.New("Internal server error")
	}
}

// taskToGraphQL converts a domain.Task into the map resolved by the Task
// type, with status in the GraphQL vocabulary and timestamps as RFC 3339.
func taskToGraphQL(task *domain.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":          task.ID,
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status.GraphQLValue(),
		"dueDate":     task.DueDate.Format(time.RFC3339),
		"createdAt":   task.CreatedAt.Format(time.RFC3339),
		"updatedAt":   task.UpdatedAt.Format(time.RFC3339),
		"version":     int(task.Version),
	}
}
