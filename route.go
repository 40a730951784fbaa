package transitworld

// Route is a GTFS route: a collection of trips presented to riders as a
// single named service.
//
// Route OnestopIDs are derived from a geohash of the stops served plus the
// route name, so distinct but similar routes can share one ID; lookups by
// such an ID return every match.
type Route struct {
	ID        uint64 `json:"id" validate:"required"`
	OnestopID string `json:"onestop_id" validate:"required"`
	// RouteID is the route_id from the source feed.
	RouteID *string `json:"route_id"`
	// RouteType is the GTFS vehicle type, e.g. 1 for subway, 3 for bus.
	RouteType      *uint64 `json:"route_type"`
	RouteShortName *string `json:"route_short_name"`
	RouteLongName  *string `json:"route_long_name"`
	// RouteColor is a hex color for the route, without leading "#".
	RouteColor     string `json:"route_color"`
	RouteTextColor string `json:"route_text_color"`
	RouteSortOrder uint64 `json:"route_sort_order"`
	// Agency is a reduced projection of the agency operating this route.
	Agency      PartialAgency       `json:"agency"`
	FeedVersion *PartialFeedVersion `json:"feed_version"`
	// RouteStops lists the stops this route serves.
	RouteStops []RouteStop `json:"route_stops" validate:"dive"`
}

func (Route) QueryPath(None) string { return "routes" }
func (Route) ByIDPath(None) string  { return "routes" }

// RouteStop is one route/stop association. Route responses populate Stop,
// stop responses populate Route; the other side stays nil.
type RouteStop struct {
	Route *PartialRoute `json:"route"`
	Stop  *PartialStop  `json:"stop"`
}

// PartialRoute is the reduced route projection embedded in agencies, trips,
// and stop associations.
type PartialRoute struct {
	ID             uint64  `json:"id" validate:"required"`
	RouteID        string  `json:"route_id" validate:"required"`
	RouteLongName  *string `json:"route_long_name"`
	RouteShortName *string `json:"route_short_name"`
}
