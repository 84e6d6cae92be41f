package client_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapmotion/geocore-go/internal/client"
	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// recordedRequest is one request seen by a testServer.
type recordedRequest struct {
	Method      string
	URI         string
	Token       string
	ContentType string
	Body        []byte
}

// testServer answers every request with a success envelope around result,
// or with the configured status and body when status is set.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	result   interface{}
	status   int
	body     string
}

func newTestServer(t *testing.T, result interface{}) *testServer {
	t.Helper()

	ts := &testServer{result: result}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.handle))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ts.mu.Lock()
	ts.requests = append(ts.requests, recordedRequest{
		Method:      r.Method,
		URI:         r.URL.RequestURI(),
		Token:       r.Header.Get(constants.AccessTokenHeader),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	status, raw, result := ts.status, ts.body, ts.result
	ts.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(raw))

		return
	}

	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": constants.EnvelopeStatusSuccess,
		"result": result,
	})
}

func (ts *testServer) respond(status int, body string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.status, ts.body = status, body
}

func (ts *testServer) last(t *testing.T) recordedRequest {
	t.Helper()

	ts.mu.Lock()
	defer ts.mu.Unlock()

	require.NotEmpty(t, ts.requests, "no request was received")

	return ts.requests[len(ts.requests)-1]
}

func (ts *testServer) count() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	return len(ts.requests)
}

// newTestClient creates a client for ts with an optional token.
func newTestClient(t *testing.T, ts *testServer, token string) *client.Client {
	t.Helper()

	c, err := client.New(&geocore.Config{
		BaseURL:     ts.URL,
		ProjectID:   "PRO-TEST",
		AccessToken: token,
	})
	require.NoError(t, err)

	return c
}
