package transitworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every queryable entity must expose its REST paths; the parent type in the
// constraint decides which queries compile at all.
var (
	_ Resource[None]     = Feed{}
	_ Resource[None]     = FeedVersion{}
	_ Resource[None]     = Agency{}
	_ Resource[None]     = Operator{}
	_ Resource[None]     = Route{}
	_ Resource[None]     = Stop{}
	_ Resource[RouteKey] = Trip{}
)

func TestTopLevelResourcePaths(t *testing.T) {
	testCases := []struct {
		name      string
		queryPath string
		byIDPath  string
	}{
		{"Feed", Feed{}.QueryPath(None{}), Feed{}.ByIDPath(None{})},
		{"FeedVersion", FeedVersion{}.QueryPath(None{}), FeedVersion{}.ByIDPath(None{})},
		{"Agency", Agency{}.QueryPath(None{}), Agency{}.ByIDPath(None{})},
		{"Operator", Operator{}.QueryPath(None{}), Operator{}.ByIDPath(None{})},
		{"Route", Route{}.QueryPath(None{}), Route{}.ByIDPath(None{})},
		{"Stop", Stop{}.QueryPath(None{}), Stop{}.ByIDPath(None{})},
	}
	expected := map[string]string{
		"Feed":        "feeds",
		"FeedVersion": "feed_versions",
		"Agency":      "agencies",
		"Operator":    "operators",
		"Route":       "routes",
		"Stop":        "stops",
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, expected[tc.name], tc.queryPath)
			assert.Equal(t, expected[tc.name], tc.byIDPath)
		})
	}
}

func TestTripPathsAreNestedUnderRoute(t *testing.T) {
	assert.Equal(t, "routes/42/trips", Trip{}.QueryPath(RouteKey(42)))
	assert.Equal(t, "routes/42/trips", Trip{}.ByIDPath(RouteKey(42)))
}

func TestTripPathsAreDeterministic(t *testing.T) {
	first := Trip{}.QueryPath(RouteKey(7))
	second := Trip{}.QueryPath(RouteKey(7))
	assert.Equal(t, first, second)
}
