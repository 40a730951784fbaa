package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cassaundra/transitworld"
)

func (app *application) run(args []string) error {
	if len(args) == 0 {
		return errors.New("no command given; run with -h for usage")
	}
	switch args[0] {
	case "search":
		return app.search(args[1:])
	case "get":
		return app.get(args[1:])
	case "trips":
		return app.trips(args[1:])
	case "trip":
		return app.trip(args[1:])
	case "download":
		return app.download(args[1:])
	}
	return fmt.Errorf("unknown command %q; run with -h for usage", args[0])
}

func (app *application) search(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: search <entity> [query]")
	}
	query := ""
	if len(args) > 1 {
		query = args[1]
	}
	ctx := context.Background()
	switch args[0] {
	case "feeds":
		return searchCommand[transitworld.Feed](ctx, app, query)
	case "feed-versions":
		return searchCommand[transitworld.FeedVersion](ctx, app, query)
	case "agencies":
		return searchCommand[transitworld.Agency](ctx, app, query)
	case "operators":
		return searchCommand[transitworld.Operator](ctx, app, query)
	case "routes":
		return searchCommand[transitworld.Route](ctx, app, query)
	case "stops":
		return searchCommand[transitworld.Stop](ctx, app, query)
	}
	return fmt.Errorf("unknown entity %q", args[0])
}

func (app *application) get(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: get <entity> <key>")
	}
	ctx := context.Background()
	switch args[0] {
	case "feeds":
		return getCommand[transitworld.Feed](ctx, app, args[1])
	case "feed-versions":
		return getCommand[transitworld.FeedVersion](ctx, app, args[1])
	case "agencies":
		return getCommand[transitworld.Agency](ctx, app, args[1])
	case "operators":
		return getCommand[transitworld.Operator](ctx, app, args[1])
	case "routes":
		return getCommand[transitworld.Route](ctx, app, args[1])
	case "stops":
		return getCommand[transitworld.Stop](ctx, app, args[1])
	}
	return fmt.Errorf("unknown entity %q", args[0])
}

func (app *application) trips(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: trips <route-id> [query]")
	}
	route, err := parseRouteKey(args[0])
	if err != nil {
		return err
	}
	query := ""
	if len(args) > 1 {
		query = args[1]
	}
	resp, err := transitworld.SearchWithParent[transitworld.Trip](context.Background(), app.request, route, app.apiKey, query)
	if err != nil {
		return err
	}
	return app.printPage(resp.Meta(), resp.Values())
}

func (app *application) trip(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: trip <route-id> <key>")
	}
	route, err := parseRouteKey(args[0])
	if err != nil {
		return err
	}
	trip, err := transitworld.GetWithParent[transitworld.Trip](context.Background(), app.request, route, app.apiKey, args[1])
	if err != nil {
		return err
	}
	if trip == nil {
		return fmt.Errorf("no trip %q on route %d", args[1], route)
	}
	return app.printJSON(trip)
}

func (app *application) download(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: download <feed-key>")
	}
	feedKey := args[0]
	b, err := transitworld.DownloadLatestFeedVersion(context.Background(), app.request, app.apiKey, feedKey)
	if err != nil {
		return err
	}

	path := app.config.output
	if path == "-" {
		_, err := app.out.Write(b)
		return err
	}
	if path == "" {
		path = feedKey + ".zip"
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	app.logger.Info("wrote feed archive", "path", path, "bytes", len(b))
	return nil
}

func searchCommand[T transitworld.Resource[transitworld.None]](ctx context.Context, app *application, query string) error {
	resp, err := transitworld.Search[T](ctx, app.request, app.apiKey, query)
	if err != nil {
		return err
	}
	return app.printPage(resp.Meta(), resp.Values())
}

func getCommand[T transitworld.Resource[transitworld.None]](ctx context.Context, app *application, key string) error {
	v, err := transitworld.Get[T](ctx, app.request, app.apiKey, key)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("no match for %q", key)
	}
	return app.printJSON(v)
}

func parseRouteKey(s string) (transitworld.RouteKey, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("route ID must be an integer, got %q", s)
	}
	return transitworld.RouteKey(n), nil
}

// printPage writes one page of search results, keeping the pagination block
// so the after cursor can be fed back via -after.
func (app *application) printPage(meta *transitworld.Meta, values any) error {
	page := struct {
		Meta   *transitworld.Meta `json:"meta,omitempty"`
		Values any                `json:"values"`
	}{meta, values}
	return app.printJSON(page)
}

func (app *application) printJSON(v any) error {
	enc := json.NewEncoder(app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
