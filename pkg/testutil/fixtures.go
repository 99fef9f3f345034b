package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// NewJSONServer starts an httptest server that answers every request with the
// given status and JSON body. The server is closed when the test finishes.
func NewJSONServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// RecordingServer is an httptest server that remembers the headers and paths
// of the requests it received, so tests can assert on what a client sent.
type RecordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest captures the observable parts of one request.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
}

// NewRecordingServer starts a RecordingServer answering with the given status
// and JSON body. The server is closed when the test finishes.
func NewRecordingServer(t *testing.T, status int, body string) *RecordingServer {
	t.Helper()
	rs := &RecordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.requests = append(rs.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
		})
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

// Requests returns a copy of the recorded requests.
func (rs *RecordingServer) Requests() []RecordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]RecordedRequest, len(rs.requests))
	copy(out, rs.requests)
	return out
}

// LastRequest returns the most recent recorded request, or nil if none.
func (rs *RecordingServer) LastRequest() *RecordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.requests) == 0 {
		return nil
	}
	req := rs.requests[len(rs.requests)-1]
	return &req
}
