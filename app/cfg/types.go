package cfg

type Cfg struct {
	// HTTP server configuration
	Port    string
	BaseUrl string

	// Mixer configuration
	SourcesFile string

	// Cache configuration
	CachePath       string
	CacheTTLSeconds int

	// Fetch configuration
	FetchTimeoutSeconds int
	UserAgent           string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
