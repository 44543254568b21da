// Package content holds the editable site content (city landing pages and
// global settings) together with its change log and backups, and persists the
// whole thing as a single JSON blob in a key/value slot.
package content

// Testimonial is a single quote shown in a city page's testimonial carousel.
type Testimonial struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Location string `json:"location,omitempty"`
	Rating   int    `json:"rating"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Hero is the text of the top-of-page banner.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageAlt string `json:"imageAlt"`
	PillText string `json:"pillText,omitempty"`
}

// Trust is the "why parents trust us" block.
type Trust struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LocalInsights is optional city-specific copy.
type LocalInsights struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// CityPage is the editable content of one market's landing page.
//
// Layout is the ordered list of visible section identifiers. A section that
// is not listed is hidden; there is no separate "disabled" state.
type CityPage struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Layout        []string       `json:"layout"`
	Hero          Hero           `json:"hero"`
	Trust         Trust          `json:"trust"`
	Testimonials  []Testimonial  `json:"testimonials"`
	FAQs          []FAQ          `json:"faqs"`
	Partners      bool           `json:"partners,omitempty"`
	LocalInsights *LocalInsights `json:"localInsights,omitempty"`
}

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
)

// Booking is read-only reference data used by the admin dashboard.
type Booking struct {
	ID         string        `json:"id"`
	ClientName string        `json:"clientName"`
	City       string        `json:"city"`
	Date       string        `json:"date"` // YYYY-MM-DD
	Revenue    int64         `json:"revenue"`
	Status     BookingStatus `json:"status"`
}

// GlobalConfig carries site-wide SEO settings and injected snippets. Script
// and file fields are stored and served verbatim.
type GlobalConfig struct {
	SiteName        string    `json:"siteName"`
	MetaDescription string    `json:"metaDescription"`
	Keywords        string    `json:"keywords"`
	GoogleTagID     string    `json:"googleTagId"`
	OGImageURL      string    `json:"ogImageUrl"`
	HeadScripts     string    `json:"headScripts"`
	FooterScripts   string    `json:"footerScripts"`
	CustomJS        string    `json:"customJs"`
	RobotsTxt       string    `json:"robotsTxt"`
	SitemapXML      string    `json:"sitemapXml"`
	Bookings        []Booking `json:"bookings"`
}

// LogEntry is one line of the admin change log.
type LogEntry struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"` // epoch milliseconds
	Description string `json:"description"`
	Author      string `json:"author"`
}

// Snapshot is the content captured by a backup.
type Snapshot struct {
	Cities map[string]CityPage `json:"cities"`
	Global GlobalConfig        `json:"global"`
}

// BackupEntry is a labelled point-in-time copy of all content.
type BackupEntry struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Label     string   `json:"label"`
	Data      Snapshot `json:"data"`
}

// State is everything the store persists.
type State struct {
	Cities  map[string]CityPage `json:"cities"`
	Global  GlobalConfig        `json:"global"`
	Backups []BackupEntry       `json:"backups"`
	Logs    []LogEntry          `json:"logs"`
}
