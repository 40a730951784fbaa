package transitworld

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/go-playground/validator/v10"
)

// validate enforces the required-field rules declared on the schema structs
// after JSON decoding, which alone treats every field as optional.
var validate = validator.New()

// Meta is the pagination block of a collection response.
type Meta struct {
	// After is the cursor of the last result on this page.
	After uint64 `json:"after"`
	// Next is the fully qualified URL of the following page, without an API
	// key.
	Next string `json:"next"`
}

// Response is one decoded page of results.
//
// The API keys the result array by the resource noun ("routes", "stops",
// and so on), so the envelope accepts whatever single non-meta key the
// server sends and exposes the array through Values.
type Response[T any] struct {
	meta   *Meta
	values []T

	req    Request
	apiKey string
}

// Meta returns the pagination block, or nil when the response carried none.
func (r *Response[T]) Meta() *Meta { return r.meta }

// Values returns the decoded results in response order. The slice is empty
// when the server matched nothing.
func (r *Response[T]) Values() []T { return r.values }

// SearchNext fetches the page Meta points at, reusing the configuration and
// API key of the call that produced this response. It returns ErrNoNextPage
// when there is no cursor to follow.
func (r *Response[T]) SearchNext(ctx context.Context) (*Response[T], error) {
	if r.meta == nil || r.meta.Next == "" {
		return nil, ErrNoNextPage
	}
	u, err := url.Parse(r.meta.Next)
	if err != nil {
		return nil, &TransportError{URL: r.meta.Next, Err: err}
	}
	q := u.Query()
	q.Set("apikey", r.apiKey)
	u.RawQuery = q.Encode()
	return doQuery[T](ctx, r.req, r.apiKey, u.String())
}

// decodeResponse unpacks a response envelope: an optional "meta" block plus
// exactly one noun-keyed result array. More than one result key means the
// caller's type cannot be matched to an array, so that is an error rather
// than a silent guess.
func decodeResponse[T any](rawURL string, body []byte, req Request, apiKey string) (*Response[T], error) {
	cleanURL := sanitizeURL(rawURL)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{URL: cleanURL, Err: err}
	}

	resp := &Response[T]{req: req, apiKey: apiKey}

	if raw, ok := envelope["meta"]; ok {
		delete(envelope, "meta")
		if string(raw) != "null" {
			meta := &Meta{}
			if err := json.Unmarshal(raw, meta); err != nil {
				return nil, &DecodeError{URL: cleanURL, Err: fmt.Errorf("meta: %w", err)}
			}
			resp.meta = meta
		}
	}

	if len(envelope) > 1 {
		keys := make([]string, 0, len(envelope))
		for key := range envelope {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return nil, &DecodeError{URL: cleanURL, Err: fmt.Errorf("ambiguous envelope with result keys %v", keys)}
	}

	for key, raw := range envelope {
		var values []T
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, &DecodeError{URL: cleanURL, Err: fmt.Errorf("%s: %w", key, err)}
		}
		for i := range values {
			if err := validate.Struct(&values[i]); err != nil {
				return nil, &DecodeError{URL: cleanURL, Err: fmt.Errorf("%s[%d]: %w", key, i, err)}
			}
		}
		resp.values = values
	}

	return resp, nil
}
