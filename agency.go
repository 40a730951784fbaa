package transitworld

// Agency is a GTFS agency imported from a single feed version; its metadata,
// routes, and places cover only that agency in that version. Operator is the
// durable grouping across versions and feeds.
type Agency struct {
	ID        uint64  `json:"id" validate:"required"`
	OnestopID *string `json:"onestop_id"`
	// AgencyID is the agency_id from the source feed.
	AgencyID       *string `json:"agency_id"`
	AgencyName     *string `json:"agency_name"`
	AgencyURL      *string `json:"agency_url"`
	AgencyTimezone *string `json:"agency_timezone"`
	AgencyLang     *string `json:"agency_lang"`
	AgencyPhone    *string `json:"agency_phone"`
	AgencyFareURL  *string `json:"agency_fare_url"`
	AgencyEmail    *string `json:"agency_email"`
	// Geometry is the convex hull of the agency's stops.
	Geometry *Geometry[Polygon] `json:"geometry"`
	// Operator is a reduced projection of the operator this agency was
	// matched to, if any.
	Operator *PartialOperator `json:"operator"`
	// Places lists the cities and regions the agency serves.
	Places      []Place             `json:"places" validate:"dive"`
	FeedVersion *PartialFeedVersion `json:"feed_version"`
	// Routes is a reduced projection of the agency's routes.
	Routes []PartialRoute `json:"routes" validate:"dive"`
}

func (Agency) QueryPath(None) string { return "agencies" }
func (Agency) ByIDPath(None) string  { return "agencies" }

// Place is a city or region an agency serves, named at up to three
// administrative levels.
type Place struct {
	CityName *string `json:"city_name"`
	// Adm1Name is the first-level subdivision, e.g. a state or province.
	Adm1Name *string `json:"adm1_name"`
	// Adm0Name is the country.
	Adm0Name *string `json:"adm0_name"`
}

// PartialAgency is the reduced agency projection embedded in routes and
// operators.
type PartialAgency struct {
	ID         uint64  `json:"id" validate:"required"`
	AgencyID   *string `json:"agency_id"`
	AgencyName *string `json:"agency_name"`
	Places     []Place `json:"places" validate:"dive"`
}
