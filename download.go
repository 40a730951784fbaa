package transitworld

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jamespfennell/gtfs"
)

// DownloadLatestFeedVersion retrieves the most recent feed version archive
// for the feed with the given key and returns the raw zip bytes.
func DownloadLatestFeedVersion(ctx context.Context, req Request, apiKey, feedKey string) ([]byte, error) {
	u := req.endpoint(latestFeedVersionPath(feedKey), req.authQuery(apiKey))
	return req.fetch(ctx, u)
}

// DownloadFeedVersion retrieves one specific feed version archive by its
// SHA1 key.
func DownloadFeedVersion(ctx context.Context, req Request, apiKey, sha1 string) ([]byte, error) {
	u := req.endpoint("feed_versions/"+url.PathEscape(sha1)+"/download", req.authQuery(apiKey))
	return req.fetch(ctx, u)
}

// FetchStaticArchive downloads the latest feed version for feedKey and
// parses the archive into its GTFS entities.
func FetchStaticArchive(ctx context.Context, req Request, apiKey, feedKey string) (*gtfs.Static, error) {
	u := req.endpoint(latestFeedVersionPath(feedKey), req.authQuery(apiKey))
	b, err := req.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, &DecodeError{URL: sanitizeURL(u), Err: fmt.Errorf("parse archive: %w", err)}
	}
	return static, nil
}

func latestFeedVersionPath(feedKey string) string {
	return "feeds/" + url.PathEscape(feedKey) + "/download_latest_feed_version"
}
