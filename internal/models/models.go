package models

// Placeholder stands in for any field the source feed did not provide
// or that could not be normalized. Records always carry every key.
const Placeholder = "N/A"

// DateLayout is the fixed, locale-independent format used for
// PublishedDate in both the snapshot file and the rendered page.
const DateLayout = "2006-01-02 15:04"

// NewsItem is one normalized syndicated article. The JSON keys are the
// snapshot file format and must not change.
type NewsItem struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	PublishedDate string `json:"published_date"`
	Summary       string `json:"summary"`
	SerialNo      int    `json:"serial_no"`
}
