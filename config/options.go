package config

const (
	defaultLogFile           = "bookscan.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "0.0.0.0"
	defaultData              = "/var/opt/bookscan"
	defaultCatalogBaseURL    = "https://www.googleapis.com/books/v1"
	defaultNotionBaseURL     = "https://api.notion.com"
)

// Placeholder credential values shipped in the sample config. A value equal
// to one of these is treated the same as an empty value.
var placeholderValues = map[string]bool{
	"your-api-key":      true,
	"your-notion-token": true,
	"your-database-id":  true,
}

// Why use mapstructure instead of json, if use json as field tags, it can't recgnize the field, since the viper use mapstructure.
// see: https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Data is the directory holding the submission journal database
	Data string `mapstructure:"data"`
	// DSN is the path of the journal database (derived from Data)
	DSN string `mapstructure:"dsn_uri"`
	// CatalogAPIKey is the Google Books API key, optional
	CatalogAPIKey string `mapstructure:"catalog_api_key"`
	// CatalogBaseURL is the Google Books volumes API base URL
	CatalogBaseURL string `mapstructure:"catalog_base_url"`
	// NotionToken is the integration token used as bearer credential
	NotionToken string `mapstructure:"notion_token"`
	// NotionDatabaseID is the database the created pages are parented to
	NotionDatabaseID string `mapstructure:"notion_database_id"`
	// NotionBaseURL is the Notion API base URL
	NotionBaseURL string `mapstructure:"notion_base_url"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Port:              defaultPort,
		Host:              defaultHost,
		Data:              defaultData,
		CatalogBaseURL:    defaultCatalogBaseURL,
		NotionBaseURL:     defaultNotionBaseURL,
	}
	return Opts
}

// IsPlaceholder reports whether v is empty or one of the documented dummy
// values from the sample config.
func IsPlaceholder(v string) bool {
	return v == "" || placeholderValues[v]
}

// HasCatalogKey reports whether a usable Google Books API key is configured.
// The catalog works without one, just with lower quota.
func (o *Options) HasCatalogKey() bool {
	return !IsPlaceholder(o.CatalogAPIKey)
}

// NotionConfigured reports whether both the token and the database id are
// usable. Submission is refused without them.
func (o *Options) NotionConfigured() bool {
	return !IsPlaceholder(o.NotionToken) && !IsPlaceholder(o.NotionDatabaseID)
}
