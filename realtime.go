package transitworld

import (
	"context"
	"io"
	"net/http"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// FetchRealtimeFeed retrieves a GTFS-Realtime endpoint and decodes the
// protobuf payload. Realtime URLs point at agency servers rather than the
// aggregator API, so no API key is attached; pass a nil client to use the
// library default.
func FetchRealtimeFeed(ctx context.Context, hc *http.Client, rawURL string) (*gtfsrtpb.FeedMessage, error) {
	if hc == nil {
		hc = defaultHTTPClient
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	feed := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(body, feed); err != nil {
		return nil, &DecodeError{URL: rawURL, Err: err}
	}
	return feed, nil
}

// VehiclePositions fetches the feed's realtime vehicle positions endpoint.
// It returns ErrNoRealtimeURL when the feed does not advertise one.
func (f *Feed) VehiclePositions(ctx context.Context, hc *http.Client) (*gtfsrtpb.FeedMessage, error) {
	return f.realtime(ctx, hc, f.Urls.RealtimeVehiclePositions)
}

// TripUpdates fetches the feed's realtime trip updates endpoint. It returns
// ErrNoRealtimeURL when the feed does not advertise one.
func (f *Feed) TripUpdates(ctx context.Context, hc *http.Client) (*gtfsrtpb.FeedMessage, error) {
	return f.realtime(ctx, hc, f.Urls.RealtimeTripUpdates)
}

// Alerts fetches the feed's realtime service alerts endpoint. It returns
// ErrNoRealtimeURL when the feed does not advertise one.
func (f *Feed) Alerts(ctx context.Context, hc *http.Client) (*gtfsrtpb.FeedMessage, error) {
	return f.realtime(ctx, hc, f.Urls.RealtimeAlerts)
}

func (f *Feed) realtime(ctx context.Context, hc *http.Client, endpoint string) (*gtfsrtpb.FeedMessage, error) {
	if endpoint == "" {
		return nil, ErrNoRealtimeURL
	}
	return FetchRealtimeFeed(ctx, hc, endpoint)
}
