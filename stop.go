package transitworld

// Stop is a GTFS stop. With the default location_type of 0 it is a physical
// boarding location; other values mark stations, entrances, pathway nodes,
// and boarding areas.
//
// Stop OnestopIDs carry the same collision caveat as route OnestopIDs.
type Stop struct {
	ID        uint64  `json:"id" validate:"required"`
	OnestopID *string `json:"onestop_id"`
	// StopID is the stop_id from the source feed.
	StopID       *string `json:"stop_id"`
	StopName     *string `json:"stop_name"`
	StopDesc     *string `json:"stop_desc"`
	StopURL      *string `json:"stop_url"`
	StopTimezone *string `json:"stop_timezone"`
	StopCode     *string `json:"stop_code"`
	ZoneID       *string `json:"zone_id"`
	// WheelchairBoarding is the GTFS accessibility flag: 1 accessible,
	// 2 not accessible, 0 unknown.
	WheelchairBoarding *uint64             `json:"wheelchair_boarding"`
	LocationType       *uint64             `json:"location_type"`
	FeedVersion        *PartialFeedVersion `json:"feed_version"`
	// Level places the stop inside a station complex.
	Level *GTFSLevel `json:"level"`
	// RouteStops lists the routes serving this stop.
	RouteStops []RouteStop `json:"route_stops" validate:"dive"`
	// Geometry is the stop location.
	Geometry Geometry[Point] `json:"geometry"`
}

func (Stop) QueryPath(None) string { return "stops" }
func (Stop) ByIDPath(None) string  { return "stops" }

// GTFSLevel is a level within a station complex, from GTFS levels.txt.
type GTFSLevel struct {
	LevelID   string `json:"level_id"`
	LevelName string `json:"level_name"`
	// LevelIndex orders levels within the station; ground is 0, lower
	// levels negative.
	LevelIndex string `json:"level_index"`
}

// PartialStop is the reduced stop projection embedded in a route's stop
// associations.
type PartialStop struct {
	ID       uint64           `json:"id" validate:"required"`
	StopID   *string          `json:"stop_id"`
	StopName *string          `json:"stop_name"`
	Geometry *Geometry[Point] `json:"geometry"`
}
