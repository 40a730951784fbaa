package transitworld

import (
	"errors"
	"fmt"
)

// ErrNoNextPage is returned by Response.SearchNext when the response carries
// no cursor to continue from.
var ErrNoNextPage = errors.New("transitworld: response has no next page")

// ErrNoRealtimeURL is returned by the Feed realtime helpers when the feed
// does not advertise an endpoint of the requested kind.
var ErrNoRealtimeURL = errors.New("transitworld: feed has no realtime URL of that kind")

// TransportError reports a failed exchange with a server: the request could
// not be built or sent, the connection failed, or the response status was
// outside the 2xx range.
type TransportError struct {
	// URL of the attempted request, with the API key redacted.
	URL string
	// Status is the HTTP status code, or zero when no response arrived.
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transitworld: GET %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("transitworld: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that does not match the shape expected
// for the requested resource type.
type DecodeError struct {
	// URL of the request the response belongs to, with the API key redacted.
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("transitworld: decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
