package handler

import (
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
)

// GraphQLHandler executes GraphQL documents against the schema built in
// internal/graph.
type GraphQLHandler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewGraphQLHandler creates a new GraphQLHandler.
func NewGraphQLHandler(schema graphql.Schema, logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, logger: logger}
}

// graphqlRequest is the body of POST /api/graphql. Mutation documents may
// arrive under either key; the two are interchangeable carriers for the
// request string.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Mutation  string         `json:"mutation"`
	Variables map[string]any `json:"variables"`
}

// HandleQuery executes a GraphQL document and returns the standard
// {data, errors} envelope. Execution errors (bad queries, domain failures)
// ride inside the envelope with a 200 status, per GraphQL convention —
// only an unreadable body is an HTTP-level error.
//
// HTTP: POST /api/graphql
func (h *GraphQLHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	source := req.Query
	if source == "" {
		source = req.Mutation
	}
	if source == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "query is required",
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  source,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})
	if len(result.Errors) > 0 {
		h.logger.Warn("graphql execution finished with errors",
			slog.Int("errors", len(result.Errors)),
		)
	}
	writeJSON(w, http.StatusOK, result)
}
