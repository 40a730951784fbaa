package transitworld

import "fmt"

// Trip is one scheduled run of a vehicle along a route. Trip responses
// embed the shape, calendar, frequencies, and stop times for the run; none
// of those have stand-alone endpoints, and neither does Trip itself, which
// the API serves only nested under its owning route.
type Trip struct {
	ID uint64 `json:"id" validate:"required"`
	// TripID is the trip_id from the source feed.
	TripID        *string `json:"trip_id"`
	TripHeadsign  *string `json:"trip_headsign"`
	TripShortName *string `json:"trip_short_name"`
	// DirectionID distinguishes the two directions of travel, 0 or 1.
	DirectionID *uint64 `json:"direction_id"`
	// BlockID groups trips served consecutively by one vehicle.
	BlockID              *string `json:"block_id"`
	WheelchairAccessible *uint64 `json:"wheelchair_accessible"`
	BikesAllowed         *uint64 `json:"bikes_allowed"`
	// StopPatternID identifies the trip's stop sequence, unique within the
	// feed version.
	StopPatternID *uint64 `json:"stop_pattern_id"`
	// StopTimes lists the scheduled stops of this trip, in sequence order.
	StopTimes []StopTime `json:"stop_times" validate:"dive"`
	Shape     Shape      `json:"shape"`
	// Calendar is the service schedule the trip runs under.
	Calendar Calendar `json:"calendar"`
	// Frequencies is the headway-based service for the trip, if any.
	Frequencies []Frequency `json:"frequencies" validate:"dive"`
	// Route is a reduced projection of the owning route.
	Route       *PartialRoute      `json:"route"`
	FeedVersion PartialFeedVersion `json:"feed_version"`
}

func (Trip) QueryPath(parent RouteKey) string {
	return fmt.Sprintf("routes/%d/trips", uint64(parent))
}

func (Trip) ByIDPath(parent RouteKey) string {
	return fmt.Sprintf("routes/%d/trips", uint64(parent))
}

// StopTime is one scheduled stop within a trip. Times are seconds since
// midnight, which can exceed 86400 for service running past the end of the
// schedule day.
type StopTime struct {
	ArrivalTime   uint64 `json:"arrival_time"`
	DepartureTime uint64 `json:"departure_time"`
	StopSequence  uint64 `json:"stop_sequence"`
	// StopHeadsign overrides the trip headsign from this stop onward.
	StopHeadsign string `json:"stop_headsign"`
	PickupType   uint64 `json:"pickup_type"`
	DropOffType  uint64 `json:"drop_off_type"`
	// Timepoint is 1 when the times are exact rather than approximate.
	Timepoint         uint64  `json:"timepoint"`
	ShapeDistTraveled float64 `json:"shape_dist_traveled"`
	// Interpolated is set when the times were filled in during import
	// rather than taken from the source feed.
	Interpolated uint64 `json:"interpolated"`
}

// Shape names the geometry a trip travels along.
type Shape struct {
	ShapeID string `json:"shape_id"`
	// Generated reports whether the shape was synthesized from straight
	// lines between stops rather than taken from shapes.txt.
	Generated bool `json:"generated"`
}

// Calendar is the service schedule for a trip, merging GTFS calendar.txt
// and calendar_dates.txt. Weekday fields are 1 on days the service runs.
type Calendar struct {
	ServiceID *string `json:"service_id"`
	// StartDate and EndDate bound the service period, as YYYY-MM-DD.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// AddedDates lists extra service dates outside the weekly pattern.
	AddedDates []string `json:"added_dates"`
	// RemovedDates lists exception dates with no service.
	RemovedDates []string `json:"removed_dates"`
	// Generated reports whether the calendar was synthesized from date
	// exceptions alone.
	Generated *bool  `json:"generated"`
	Monday    uint64 `json:"monday"`
	Tuesday   uint64 `json:"tuesday"`
	Wednesday uint64 `json:"wednesday"`
	Thursday  uint64 `json:"thursday"`
	Friday    uint64 `json:"friday"`
	Saturday  uint64 `json:"saturday"`
	Sunday    uint64 `json:"sunday"`
}

// Frequency is headway-based service for a trip, from GTFS frequencies.txt.
// Times are seconds since midnight.
type Frequency struct {
	StartTime   uint64 `json:"start_time"`
	EndTime     uint64 `json:"end_time"`
	HeadwaySecs uint64 `json:"headway_secs"`
	// ExactTimes is 1 when departures follow the headway exactly.
	ExactTimes uint64 `json:"exact_times"`
}
