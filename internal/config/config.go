package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "harmscan"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8060
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultDBDriver        = "sqlite3"
	defaultDBDSN           = "harmscan.db"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultModelServiceURL = "http://harm-model:8064"
	defaultVectorURL       = "http://narrative-index:8063"
	defaultModelTimeoutSec = 5
	defaultModelRPS        = 50
	defaultTopK            = 2
	defaultSeedDays        = 90
	defaultSeedRandSeed    = 20240101
)

// Config holds all configuration for the harmscan service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Model      ModelConfig      `yaml:"model"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Trend      TrendConfig      `yaml:"trend"`
	Auth       AuthConfig       `yaml:"auth"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"HARMSCAN_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"     yaml:"debug"`
}

// DatabaseConfig holds the time-series store configuration.
// Driver is "postgres" for production deployments and "sqlite3" for
// local development; both go through sqlx with the same schema.
type DatabaseConfig struct {
	Driver          string        `env:"HARMSCAN_DB_DRIVER" yaml:"driver"`
	DSN             string        `env:"HARMSCAN_DB_DSN"    yaml:"dsn"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// ModelConfig holds the harm-model sidecar configuration.
type ModelConfig struct {
	Enabled    bool          `env:"MODEL_ENABLED"     yaml:"enabled"`
	ServiceURL string        `env:"MODEL_SERVICE_URL" yaml:"service_url"`
	Timeout    time.Duration `yaml:"timeout"`
	RPS        int           `yaml:"rps"`
}

// SimilarityConfig holds the narrative-index sidecar configuration.
type SimilarityConfig struct {
	Enabled    bool          `env:"SIMILARITY_ENABLED"     yaml:"enabled"`
	ServiceURL string        `env:"SIMILARITY_SERVICE_URL" yaml:"service_url"`
	TopK       int           `yaml:"top_k"`
	Timeout    time.Duration `yaml:"timeout"`
}

// TrendConfig holds trend-engine configuration.
type TrendConfig struct {
	// SeedOnEmpty generates a synthetic history when the store is empty,
	// so local deployments have trend context from the first request.
	SeedOnEmpty bool  `yaml:"seed_on_empty"`
	SeedDays    int   `yaml:"seed_days"`
	SeedRand    int64 `yaml:"seed_rand"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setLoggingDefaults(&cfg.Logging)
	setModelDefaults(&cfg.Model)
	setSimilarityDefaults(&cfg.Similarity)
	setTrendDefaults(&cfg.Trend)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.DSN == "" {
		d.DSN = defaultDBDSN
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setModelDefaults(m *ModelConfig) {
	if m.ServiceURL == "" {
		m.ServiceURL = defaultModelServiceURL
	}
	if m.Timeout == 0 {
		m.Timeout = defaultModelTimeoutSec * time.Second
	}
	if m.RPS == 0 {
		m.RPS = defaultModelRPS
	}
}

func setSimilarityDefaults(s *SimilarityConfig) {
	if s.ServiceURL == "" {
		s.ServiceURL = defaultVectorURL
	}
	if s.TopK == 0 {
		s.TopK = defaultTopK
	}
	if s.Timeout == 0 {
		s.Timeout = defaultModelTimeoutSec * time.Second
	}
}

func setTrendDefaults(t *TrendConfig) {
	if t.SeedDays == 0 {
		t.SeedDays = defaultSeedDays
	}
	if t.SeedRand == 0 {
		t.SeedRand = defaultSeedRandSeed
	}
}
