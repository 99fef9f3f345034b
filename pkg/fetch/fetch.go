// Package fetch provides HTTP GET helpers that decode JSON response bodies.
// FetchData is the bare convenience entry point: one request, one decode,
// nothing else. Client adds request identification, pacing, bearer auth, and
// counters for callers that want a configured instance, but neither form
// retries, checks status codes, or translates errors.
package fetch

import (
	"context"
	"encoding/json"
	"net/http"
)

// FetchData issues a single GET to url and returns the JSON-decoded body.
//
// There is no retry, no timeout, and no status-code check; cancellation is
// only available through ctx. Transport and decode failures are returned
// unmodified so callers see exactly what net/http or encoding/json produced.
// Callers needing deadlines or backpressure must wrap the call themselves.
func FetchData(ctx context.Context, url string) (interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var data interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data, nil
}
