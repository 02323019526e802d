package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Data   DataConfig
	Geo    GeoConfig
	Alerts AlertsConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DataConfig names the CSV snapshot files read once at startup
type DataConfig struct {
	Dir              string
	TransactionsFile string
	StoresFile       string
	CustomersFile    string
	PedestriansFile  string
}

// GeoConfig contains geographic aggregation configuration
type GeoConfig struct {
	CellPrecision uint // geohash precision for density cells
}

// AlertsConfig contains the startup defaults for alerting thresholds
type AlertsConfig struct {
	MinRevenue            float64
	MaxCouponUsagePercent float64
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // "file", "console" or "both"
}
