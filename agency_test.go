package transitworld

import (
	"context"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAgencyDecodesOperatorAndPlaces(t *testing.T) {
	body := `{
		"agencies": [
			{
				"id": 54,
				"onestop_id": "o-9q9-caltrain",
				"agency_id": "CT",
				"agency_name": "Caltrain",
				"agency_url": "https://www.caltrain.com",
				"agency_timezone": "America/Los_Angeles",
				"agency_lang": "en",
				"agency_phone": "800-660-4287",
				"operator": {
					"onestop_id": "o-9q9-caltrain",
					"name": "Caltrain",
					"short_name": "Caltrain",
					"tags": {"us_ntd_id": "90134", "wheelchair_boarding": "1"}
				},
				"places": [
					{"city_name": "San Francisco", "adm1_name": "California", "adm0_name": "United States of America"},
					{"city_name": "San Jose", "adm1_name": "California", "adm0_name": "United States of America"}
				],
				"feed_version": {"id": 301, "sha1": "b5d3a8f2e1c94067d8a90b12c3d4e5f601234567", "fetched_at": "2023-03-14T09:26:53Z"},
				"routes": [
					{"id": 11, "route_id": "L1", "route_long_name": "San Francisco - San Jose"}
				]
			}
		]
	}`
	req := newTestAPI(t, func(router *httprouter.Router) {
		router.GET("/agencies/:key", serveJSON(body))
	})

	agency, err := Get[Agency](context.Background(), req, testAPIKey, "o-9q9-caltrain")
	require.NoError(t, err)
	require.NotNil(t, agency)

	require.NotNil(t, agency.AgencyTimezone)
	assert.Equal(t, "America/Los_Angeles", *agency.AgencyTimezone)

	require.NotNil(t, agency.Operator)
	assert.Equal(t, "Caltrain", agency.Operator.Name)
	assert.Equal(t, "90134", agency.Operator.Tags["us_ntd_id"])

	require.Len(t, agency.Places, 2)
	require.NotNil(t, agency.Places[1].CityName)
	assert.Equal(t, "San Jose", *agency.Places[1].CityName)

	require.Len(t, agency.Routes, 1)
	assert.Equal(t, "L1", agency.Routes[0].RouteID)
}

func TestSearchOperatorsDecodesAgencyProjections(t *testing.T) {
	body := `{
		"meta": {"after": 33, "next": ""},
		"operators": [
			{
				"id": 33,
				"onestop_id": "o-9q9-bart",
				"name": "San Francisco Bay Area Rapid Transit District",
				"short_name": "BART",
				"website": "https://www.bart.gov",
				"tags": {"us_ntd_id": "90003"},
				"agencies": [
					{"id": 55, "agency_id": "BART", "agency_name": "Bay Area Rapid Transit", "places": [{"city_name": "Oakland"}]}
				]
			}
		]
	}`
	req := newTestAPI(t, func(router *httprouter.Router) {
		router.GET("/operators", serveJSON(body))
	})

	resp, err := Search[Operator](context.Background(), req, testAPIKey, "bart")
	require.NoError(t, err)
	require.Len(t, resp.Values(), 1)

	op := resp.Values()[0]
	require.NotNil(t, op.ShortName)
	assert.Equal(t, "BART", *op.ShortName)
	assert.Equal(t, "90003", op.Tags["us_ntd_id"])

	require.Len(t, op.Agencies, 1)
	assert.Equal(t, uint64(55), op.Agencies[0].ID)
	require.Len(t, op.Agencies[0].Places, 1)
	require.NotNil(t, op.Agencies[0].Places[0].CityName)
	assert.Equal(t, "Oakland", *op.Agencies[0].Places[0].CityName)
}
