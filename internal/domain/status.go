package domain

import "strings"

// Status is the canonical task status. It has exactly four values; both
// wire vocabularies (REST storage strings and GraphQL enum names) map onto
// it bijectively.
type Status string

// Canonical status values.
const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusExpired    Status = "EXPIRED"
)

// Statuses returns the canonical status domain in declaration order.
func Statuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusExpired}
}

// The REST surface (and the document store) use human-readable Russian
// strings; the GraphQL enum uses the canonical names themselves.
var statusToREST = map[Status]string{
	StatusOpen:       "открыта",
	StatusInProgress: "в процессе",
	StatusCompleted:  "завершена",
	StatusExpired:    "просрочена",
}

var restToStatus = map[string]Status{
	"открыта":    StatusOpen,
	"в процессе": StatusInProgress,
	"завершена":  StatusCompleted,
	"просрочена": StatusExpired,
}

// RESTValue returns the REST/storage representation of s. The empty string
// is returned for a value outside the canonical domain; callers that hold
// a parsed Status never see it.
func (s Status) RESTValue() string {
	return statusToREST[s]
}

// GraphQLValue returns the GraphQL enum name of s.
func (s Status) GraphQLValue() string {
	return string(s)
}

// IsValid reports whether s is one of the four canonical values.
func (s Status) IsValid() bool {
	_, ok := statusToREST[s]
	return ok
}

// ParseRESTStatus maps a REST/storage string back to the canonical status.
// An unknown value is a caller error and yields a ValidationError.
func ParseRESTStatus(v string) (Status, error) {
	if s, ok := restToStatus[v]; ok {
		return s, nil
	}
	return "", invalidStatusError()
}

// ParseGraphQLStatus maps a GraphQL enum name back to the canonical status.
func ParseGraphQLStatus(v string) (Status, error) {
	s := Status(v)
	if s.IsValid() {
		return s, nil
	}
	return "", invalidStatusError()
}

func invalidStatusError() *ValidationError {
	values := make([]string, 0, len(statusToREST))
	for _, s := range Statuses() {
		values = append(values, s.RESTValue())
	}
	return NewValidationError(
		CodeInvalidStatus,
		"Invalid status. Must be one of: "+strings.Join(values, ", "),
	)
}
