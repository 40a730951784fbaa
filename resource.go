package transitworld

// Resource ties an entity type to the REST paths it is served under. The
// parameter P is the parent key type: None for entities with top-level
// endpoints, RouteKey for trips, which the API only exposes nested under a
// route. Search and Get take their path from here, so an entity can only be
// queried with a parent of the right type, checked at compile time.
//
// Path methods are pure: the same parent always produces the same path, and
// no request is made.
type Resource[P any] interface {
	// QueryPath returns the collection path for Search, relative to the API
	// base URL.
	QueryPath(parent P) string
	// ByIDPath returns the path prefix for Get; the resource key is appended
	// as a final path segment.
	ByIDPath(parent P) string
}

// None is the parent type of entities served at top-level endpoints.
type None struct{}

// RouteKey is the integer ID of a route, used as the parent key for trips.
type RouteKey uint64
