package transitworld

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

const testAPIKey = "test-key"

// newTestAPI starts a server standing in for the REST API and returns a
// Request aimed at it. The caller registers whatever endpoints the test
// needs on the router.
func newTestAPI(t *testing.T, register func(router *httprouter.Router)) Request {
	t.Helper()

	router := httprouter.New()
	register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return NewRequest().WithBaseURL(server.URL).WithHTTPClient(server.Client())
}

// serveJSON returns a handler that answers every request with body.
func serveJSON(body string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

// serveStatus returns a handler that answers with an empty response and the
// given status code.
func serveStatus(status int) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(status)
	}
}
