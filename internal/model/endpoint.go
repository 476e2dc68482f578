package model

import "encoding/json"

// FieldKind is the input kind of an endpoint field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldBoolean  FieldKind = "boolean"
)

// Field describes one parameter of an endpoint. A field whose name matches a
// `{name}` placeholder in the endpoint path is always treated as a path
// parameter, regardless of InQuery.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Default     string    `json:"default,omitempty"`
	Options     []string  `json:"options,omitempty"`
	InQuery     bool      `json:"in_query,omitempty"`
}

// Endpoint is a static descriptor for one remote admin operation.
type Endpoint struct {
	ID          string  `json:"id"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
	Sensitive   bool    `json:"sensitive,omitempty"`
}

// InvocationResult is the outcome of one endpoint invocation: either a parsed
// success payload or a failure with a message and best-effort error payload.
type InvocationResult struct {
	OK      bool            `json:"ok"`
	Status  int             `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Raw     string          `json:"raw,omitempty"`
}

// InvokeRequest is the request body for invoking an endpoint.
type InvokeRequest struct {
	Values  map[string]string `json:"values"`
	Confirm bool              `json:"confirm,omitempty"`
}

// InvokeResponse wraps an invocation outcome. Armed is set when a sensitive
// endpoint was triggered without confirmation and nothing was dispatched.
type InvokeResponse struct {
	Armed  bool              `json:"armed,omitempty"`
	Result *InvocationResult `json:"result,omitempty"`
}

// ListEndpointsResponse is the response for listing the endpoint catalog.
type ListEndpointsResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
	Total     int        `json:"total"`
}
