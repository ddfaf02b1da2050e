package config

import "time"

// Config holds all application configuration.
type Config struct {
	Portal  Portal  `mapstructure:"portal"`
	Fetcher Fetcher `mapstructure:"fetcher"`
	Archive Archive `mapstructure:"archive"`
}

// Portal holds the agenda portal endpoints. ListingPath takes the year;
// MeetingPath takes the meeting ID and the year.
type Portal struct {
	BaseURL     string `mapstructure:"base_url"`
	ListingPath string `mapstructure:"listing_path"`
	MeetingPath string `mapstructure:"meeting_path"`
}

// Fetcher holds HTTP client configuration. PageTimeout bounds HTML page
// fetches; DownloadTimeout bounds file streaming, which can take longer.
type Fetcher struct {
	UserAgent       string        `mapstructure:"user_agent"`
	PageTimeout     time.Duration `mapstructure:"page_timeout"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
	Delay           time.Duration `mapstructure:"delay"`
}

// Archive holds the local output tree and the year range to scrape.
type Archive struct {
	Root     string `mapstructure:"root"`
	FromYear int    `mapstructure:"from_year"`
	ToYear   int    `mapstructure:"to_year"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Portal: Portal{
			BaseURL:     "https://www.joplinmo.org",
			ListingPath: "/AgendaCenter/City-Council-26?MOBILE=ON&year=%d",
			MeetingPath: "/AgendaCenter/26/%d?MOBILE=ON&year=%d",
		},
		Fetcher: Fetcher{
			UserAgent:       "agendarchive/1.0",
			PageTimeout:     15 * time.Second,
			DownloadTimeout: 60 * time.Second,
			Delay:           500 * time.Millisecond,
		},
		Archive: Archive{
			Root:     "joplin_council_pdfs",
			FromYear: 2022,
			ToYear:   2025,
		},
	}
}
