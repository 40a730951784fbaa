// Package transitworld provides typed bindings for the Transitland v2 REST
// API, an aggregation of thousands of public transit feeds in the GTFS,
// GTFS-Realtime, and related formats.
//
// Queries are built from an immutable Request value and executed with the
// generic Search and Get functions, parameterized by the entity type to
// retrieve:
//
//	req := transitworld.NewRequest().WithLimit(5)
//	resp, err := transitworld.Search[transitworld.Route](ctx, req, apiKey, "bart")
//	if err != nil {
//		// ...
//	}
//	for _, route := range resp.Values() {
//		fmt.Println(route.OnestopID)
//	}
//
// Entities nested under a parent, such as the trips of a route, are reached
// with the *WithParent variants:
//
//	trips, err := transitworld.SearchWithParent[transitworld.Trip](ctx, req, transitworld.RouteKey(12345), apiKey, "")
//
// The compiler rejects queries that the API cannot answer: Trip does not
// satisfy Resource[None], so Search[transitworld.Trip] fails to build.
//
// An API key is required for every call; sign up at https://www.transit.land.
package transitworld
