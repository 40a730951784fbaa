package transitworld

// Feed describes how to access transit data from one source: the URLs the
// data lives at, the license it is published under, any authorization the
// publisher requires, and the archive of versions fetched so far.
type Feed struct {
	// ID is the unique integer ID of this feed.
	ID uint64 `json:"id" validate:"required"`
	// OnestopID is the stable "f-..." identifier for this feed.
	OnestopID string `json:"onestop_id" validate:"required"`
	// Name is a common name for this feed, if one is set.
	Name *string `json:"name"`
	// Spec is the data specification the feed is published in.
	Spec Spec `json:"spec" validate:"required"`
	// FeedNamespaceID groups feeds whose entity IDs may be mixed without
	// rewriting.
	FeedNamespaceID *string `json:"feed_namespace_id"`
	// AssociatedFeeds names related feeds, such as the static GTFS feeds
	// backing a realtime feed.
	AssociatedFeeds []string `json:"associated_feeds"`
	// Languages contained in the feed.
	Languages []string `json:"languages"`
	// Urls locates the feed's data endpoints.
	Urls Urls `json:"urls"`
	// License records the terms the feed is published under.
	License License `json:"license"`
	// Authorization describes how to build requests for a protected feed.
	Authorization Authorization `json:"authorization"`
	// Geometry is the convex hull of the feed's stops.
	Geometry *Geometry[Polygon] `json:"geometry"`
	// FeedState reports the current fetch status of the feed.
	FeedState FeedState `json:"feed_state"`
	// FeedVersions lists the archived versions of this feed, most recent
	// first, as reduced projections.
	FeedVersions []PartialFeedVersion `json:"feed_versions" validate:"dive"`
}

func (Feed) QueryPath(None) string { return "feeds" }
func (Feed) ByIDPath(None) string  { return "feeds" }

// Urls locates the data endpoints associated with a feed. Fields are empty
// when the feed has no endpoint of that kind.
type Urls struct {
	// StaticCurrent is the URL of the current static feed archive.
	StaticCurrent string `json:"static_current"`
	// StaticHistoric lists URLs of earlier static archives.
	StaticHistoric []string `json:"static_historic"`
	// StaticPlanned is the URL of a not-yet-active static archive.
	StaticPlanned string `json:"static_planned"`
	// RealtimeVehiclePositions is the GTFS-Realtime vehicle positions endpoint.
	RealtimeVehiclePositions string `json:"realtime_vehicle_positions"`
	// RealtimeTripUpdates is the GTFS-Realtime trip updates endpoint.
	RealtimeTripUpdates string `json:"realtime_trip_updates"`
	// RealtimeAlerts is the GTFS-Realtime service alerts endpoint.
	RealtimeAlerts string `json:"realtime_alerts"`
}

// License records the terms a feed is published under. The permission
// fields hold "yes", "no", or "unknown".
type License struct {
	// SPDXIdentifier is the license's identifier from the SPDX list.
	SPDXIdentifier *string `json:"spdx_identifier"`
	// URL points at the license text for feeds under a custom license.
	URL                     *string `json:"url"`
	UseWithoutAttribution   *string `json:"use_without_attribution"`
	CreateDerivedProduct    *string `json:"create_derived_product"`
	RedistributionAllowed   *string `json:"redistribution_allowed"`
	CommercialUseAllowed    *string `json:"commercial_use_allowed"`
	ShareAlikeOptional      *string `json:"share_alike_optional"`
	AttributionText         *string `json:"attribution_text"`
	AttributionInstructions *string `json:"attribution_instructions"`
}

// Authorization describes how to construct a request for a feed that
// requires credentials.
type Authorization struct {
	// Type is the mechanism for attaching the secret, nil or AuthNone for
	// open feeds.
	Type *AuthorizationType `json:"type"`
	// ParamName is the query parameter or header the secret goes in.
	ParamName *string `json:"param_name"`
	// InfoURL is where to sign up for credentials.
	InfoURL string `json:"info_url"`
}

// FeedState reports the fetch status of a feed.
type FeedState struct {
	// LastFetchError holds the failure from the most recent fetch attempt,
	// nil or empty after a success.
	LastFetchError        *string `json:"last_fetch_error"`
	LastFetchedAt         *string `json:"last_fetched_at"`
	LastSuccessfulFetchAt *string `json:"last_successful_fetch_at"`
	// FeedVersion is the currently active version of the feed.
	FeedVersion PartialFeedVersion `json:"feed_version"`
}

// PartialFeed is the reduced feed projection embedded in feed version
// responses.
type PartialFeed struct {
	Name      *string `json:"name"`
	OnestopID string  `json:"onestop_id" validate:"required"`
	Spec      Spec    `json:"spec" validate:"required"`
}
