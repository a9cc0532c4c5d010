package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler wraps the schema in an HTTP handler. When playground is true,
// GET requests serve the GraphiQL explorer.
func NewHandler(schema *graphql.Schema, playground bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: playground,
	})
}
