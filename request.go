package transitworld

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Transitland v2 REST endpoint.
const DefaultBaseURL = "https://transit.land/api/v2/rest"

// DefaultLimit is the page size used when none is configured.
const DefaultLimit = 20

var defaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Request carries the configuration a query runs with. Construct one with
// NewRequest and derive variants with the With methods, each of which
// returns a new value and leaves the receiver untouched, so a single
// Request can safely serve any number of concurrent calls.
type Request struct {
	spec    Spec
	limit   uint64
	after   *uint64
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// NewRequest returns a Request with the default configuration: GTFS spec,
// page size of DefaultLimit, production base URL.
func NewRequest() Request {
	return Request{
		spec:    SpecGTFS,
		limit:   DefaultLimit,
		baseURL: DefaultBaseURL,
		hc:      defaultHTTPClient,
		logger:  slog.Default(),
	}
}

// Spec returns the feed spec the request is configured for.
func (r Request) Spec() Spec { return r.spec }

// Limit returns the configured page size.
func (r Request) Limit() uint64 { return r.limit }

// BaseURL returns the API root the request is aimed at.
func (r Request) BaseURL() string { return r.baseURL }

// WithSpec returns a copy of the request configured for the given feed spec.
func (r Request) WithSpec(spec Spec) Request {
	r.spec = spec
	return r
}

// WithLimit returns a copy of the request with the given page size. The
// value is passed through as-is; the service clamps what it will serve.
func (r Request) WithLimit(limit uint64) Request {
	r.limit = limit
	return r
}

// WithAfter returns a copy of the request that resumes a listing from the
// given pagination cursor.
func (r Request) WithAfter(after uint64) Request {
	r.after = &after
	return r
}

// WithBaseURL returns a copy of the request aimed at a different API root,
// such as a test server.
func (r Request) WithBaseURL(baseURL string) Request {
	r.baseURL = strings.TrimSuffix(baseURL, "/")
	return r
}

// WithHTTPClient returns a copy of the request that sends through hc. A nil
// client restores the library default.
func (r Request) WithHTTPClient(hc *http.Client) Request {
	if hc == nil {
		hc = defaultHTTPClient
	}
	r.hc = hc
	return r
}

// WithLogger returns a copy of the request that logs through l.
func (r Request) WithLogger(l *slog.Logger) Request {
	if l == nil {
		l = slog.Default()
	}
	r.logger = l
	return r
}

// Search queries a top-level collection. An empty query lists the
// collection in the service's default order; otherwise results are filtered
// by full-text search.
func Search[T Resource[None]](ctx context.Context, req Request, apiKey, query string) (*Response[T], error) {
	return SearchWithParent[T](ctx, req, None{}, apiKey, query)
}

// SearchWithParent queries a collection nested under a parent resource,
// such as the trips of one route.
func SearchWithParent[T Resource[P], P any](ctx context.Context, req Request, parent P, apiKey, query string) (*Response[T], error) {
	var zero T
	u := req.endpoint(zero.QueryPath(parent), req.searchQuery(apiKey, query))
	return doQuery[T](ctx, req, apiKey, u)
}

// Get fetches a single top-level resource by key: an integer ID or, for
// most entities, a OnestopID. The result is nil when the service reports no
// match. A key that matches several entities, which generated OnestopIDs
// permit, yields the first.
func Get[T Resource[None]](ctx context.Context, req Request, apiKey, key string) (*T, error) {
	return GetWithParent[T](ctx, req, None{}, apiKey, key)
}

// GetWithParent fetches a single resource nested under a parent, with the
// same key semantics as Get.
func GetWithParent[T Resource[P], P any](ctx context.Context, req Request, parent P, apiKey, key string) (*T, error) {
	var zero T
	u := req.endpoint(zero.ByIDPath(parent)+"/"+url.PathEscape(key), req.getQuery(apiKey))
	resp, err := doQuery[T](ctx, req, apiKey, u)
	if err != nil {
		return nil, err
	}
	if len(resp.values) == 0 {
		return nil, nil
	}
	return &resp.values[0], nil
}

func doQuery[T any](ctx context.Context, req Request, apiKey, rawURL string) (*Response[T], error) {
	body, err := req.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](rawURL, body, req, apiKey)
}

func (r Request) endpoint(path string, query url.Values) string {
	return r.baseURL + "/" + path + "?" + query.Encode()
}

func (r Request) authQuery(apiKey string) url.Values {
	q := url.Values{}
	q.Set("apikey", apiKey)
	return q
}

func (r Request) getQuery(apiKey string) url.Values {
	q := r.authQuery(apiKey)
	q.Set("limit", strconv.FormatUint(r.limit, 10))
	return q
}

func (r Request) searchQuery(apiKey, query string) url.Values {
	q := r.getQuery(apiKey)
	if r.after != nil {
		q.Set("after", strconv.FormatUint(*r.after, 10))
	}
	if query != "" {
		q.Set("search", query)
	}
	return q
}

// fetch performs one GET against a fully built URL and returns the raw
// body. Failures to connect and non-2xx statuses both surface as a
// *TransportError.
func (r Request) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	cleanURL := sanitizeURL(rawURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: cleanURL, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.hc.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: cleanURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: cleanURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: cleanURL, Err: err}
	}

	r.logger.DebugContext(ctx, "request complete",
		slog.String("url", cleanURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	return body, nil
}

// sanitizeURL masks the API key before a URL reaches a log line or an error
// message.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("apikey") {
		q.Set("apikey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
