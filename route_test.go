package transitworld

import (
	"context"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localRoutesPage = `{
	"meta": {"after": 11, "next": ""},
	"routes": [
		{
			"id": 11,
			"onestop_id": "r-9q9j-local",
			"route_id": "L1",
			"route_type": 2,
			"route_short_name": "Local",
			"route_long_name": "San Francisco - San Jose",
			"route_color": "E31837",
			"route_text_color": "FFFFFF",
			"route_sort_order": 1,
			"agency": {"id": 54, "agency_id": "CT", "agency_name": "Caltrain"},
			"feed_version": {"id": 301, "sha1": "b5d3a8f2e1c94067d8a90b12c3d4e5f601234567", "fetched_at": "2023-03-14T09:26:53Z"},
			"route_stops": [
				{"stop": {"id": 101, "stop_id": "70261", "stop_name": "San Jose Diridon", "geometry": {"type": "Point", "coordinates": [-121.903, 37.33]}}},
				{"stop": {"id": 102, "stop_id": "70011", "stop_name": "San Francisco", "geometry": {"type": "Point", "coordinates": [-122.395, 37.776]}}}
			]
		}
	]
}`

func TestSearchRoutesDecodesAgencyAndStops(t *testing.T) {
	req := newTestAPI(t, func(router *httprouter.Router) {
		router.GET("/routes", serveJSON(localRoutesPage))
	})

	resp, err := Search[Route](context.Background(), req, testAPIKey, "caltrain")
	require.NoError(t, err)
	require.Len(t, resp.Values(), 1)

	route := resp.Values()[0]
	assert.Equal(t, "r-9q9j-local", route.OnestopID)
	require.NotNil(t, route.RouteType)
	assert.Equal(t, uint64(2), *route.RouteType)
	assert.Equal(t, "E31837", route.RouteColor)

	assert.Equal(t, uint64(54), route.Agency.ID)
	require.NotNil(t, route.Agency.AgencyName)
	assert.Equal(t, "Caltrain", *route.Agency.AgencyName)

	require.Len(t, route.RouteStops, 2)
	first := route.RouteStops[0]
	assert.Nil(t, first.Route, "route responses only carry the stop side")
	require.NotNil(t, first.Stop)
	assert.Equal(t, uint64(101), first.Stop.ID)
	require.NotNil(t, first.Stop.StopID)
	assert.Equal(t, "70261", *first.Stop.StopID)
	require.NotNil(t, first.Stop.StopName)
	assert.Equal(t, "San Jose Diridon", *first.Stop.StopName)
	require.NotNil(t, first.Stop.Geometry)
	assert.InDelta(t, -121.903, first.Stop.Geometry.Coordinates.Lon(), 1e-9)
}

func TestRouteWithoutColorsStillDecodes(t *testing.T) {
	// route_color is always present in responses but may be empty; an empty
	// string must not be confused with a missing field.
	body := `{
		"routes": [
			{
				"id": 12,
				"onestop_id": "r-9q9j-limited",
				"route_color": "",
				"route_text_color": "",
				"route_sort_order": 0,
				"agency": {"id": 54}
			}
		]
	}`
	req := newTestAPI(t, func(router *httprouter.Router) {
		router.GET("/routes", serveJSON(body))
	})

	resp, err := Search[Route](context.Background(), req, testAPIKey, "")
	require.NoError(t, err)
	require.Len(t, resp.Values(), 1)
	assert.Empty(t, resp.Values()[0].RouteColor)
}

func TestRouteMissingIdentityIsRejected(t *testing.T) {
	req := newTestAPI(t, func(router *httprouter.Router) {
		router.GET("/routes", serveJSON(`{"routes": [{"onestop_id": "r-no-id", "agency": {"id": 1}}]}`))
	})

	_, err := Search[Route](context.Background(), req, testAPIKey, "")
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Error(), "ID")
}
