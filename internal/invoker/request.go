// Package invoker builds and dispatches requests described by endpoint
// descriptors from the catalog.
package invoker

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

// Request is a built, ready-to-dispatch request. URL is relative to the
// upstream base and already carries the query string. Body is nil for GET
// requests and when no body field has a value.
type Request struct {
	Method string
	URL    string
	Body   map[string]string
}

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// BuildRequest substitutes path placeholders and partitions the remaining
// field values into query string and body. A field whose name matches a path
// placeholder is only ever a path parameter; empty values are omitted from
// both query and body. A missing placeholder value substitutes the
// placeholder's own name — the resulting 404 from upstream is the caller's
// signal, no validation happens here.
func BuildRequest(d model.Endpoint, values map[string]string) Request {
	pathParams := make(map[string]bool)
	path := placeholderPattern.ReplaceAllStringFunc(d.Path, func(token string) string {
		name := token[1 : len(token)-1]
		pathParams[name] = true
		if v := values[name]; v != "" {
			return url.PathEscape(v)
		}
		return name
	})

	var query []string
	body := make(map[string]string)
	for _, f := range d.Fields {
		if pathParams[f.Name] {
			continue
		}
		v := values[f.Name]
		if v == "" {
			continue
		}
		if f.InQuery {
			query = append(query, f.Name+"="+url.QueryEscape(v))
			continue
		}
		body[f.Name] = v
	}

	if query != nil {
		path += "?" + strings.Join(query, "&")
	}
	if d.Method == "GET" || len(body) == 0 {
		body = nil
	}

	return Request{Method: d.Method, URL: path, Body: body}
}
