package cfg

type Cfg struct {
	// HTTP server configuration
	Port         string
	APIAccessKey string

	// Scrape source configuration
	SourceURL     string
	MaxPages      int
	WorkerCount   int
	ScrapeTimeout int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
