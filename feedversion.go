package transitworld

// FeedVersion is one fetched archive of a feed, identified by the SHA1 of
// the zip contents and fixed forever after import.
type FeedVersion struct {
	ID *uint64 `json:"id"`
	// SHA1 of the archive, the stable key for this version.
	SHA1 *string `json:"sha1"`
	// FetchedAt is when the archive was retrieved from the source.
	FetchedAt string  `json:"fetched_at" validate:"required"`
	URL       *string `json:"url"`
	// EarliestCalendarDate is the first date with scheduled service.
	EarliestCalendarDate *string `json:"earliest_calendar_date"`
	// LatestCalendarDate is the last date with scheduled service.
	LatestCalendarDate *string `json:"latest_calendar_date"`
	// Files describes the contents of the archive's main directory.
	Files []FileMetadata `json:"files" validate:"dive"`
	// ServiceLevels summarizes scheduled service over the feed's duration.
	ServiceLevels []Calendar `json:"service_levels" validate:"dive"`
	// Feed is a reduced projection of the feed this version belongs to.
	Feed PartialFeed `json:"feed"`
}

func (FeedVersion) QueryPath(None) string { return "feed_versions" }
func (FeedVersion) ByIDPath(None) string  { return "feed_versions" }

// FileMetadata describes one file inside a feed version archive.
type FileMetadata struct {
	// Name of the file, e.g. "stops.txt".
	Name string `json:"name" validate:"required"`
	// SHA1 of the file contents.
	SHA1 string `json:"sha1"`
	// Header is the cleaned-up header row, comma-separated.
	Header string `json:"header"`
	// Rows counts data rows, excluding the header.
	Rows uint64 `json:"rows"`
	// CSVLike reports whether the file parsed as delimited text.
	CSVLike bool `json:"csv_like"`
	// Size of the file in bytes.
	Size uint64 `json:"size"`
}

// PartialFeedVersion is the reduced feed version projection embedded in
// other entities.
type PartialFeedVersion struct {
	ID                   *uint64 `json:"id"`
	SHA1                 string  `json:"sha1" validate:"required"`
	FetchedAt            string  `json:"fetched_at" validate:"required"`
	URL                  *string `json:"url"`
	EarliestCalendarDate *string `json:"earliest_calendar_date"`
	LatestCalendarDate   *string `json:"latest_calendar_date"`
}
