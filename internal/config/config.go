package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Corpus     DocumentConfig   `mapstructure:"corpus"`
	Exhibition DocumentConfig   `mapstructure:"exhibition"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	HTTP       HTTPClientConfig `mapstructure:"http"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
	// AdminToken guards /api/v1/admin. Admin routes are disabled when empty.
	AdminToken string `mapstructure:"admin_token"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// Document source kinds.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// DocumentConfig locates one of the two exhibition documents.
// Path is used by file sources, URL by http sources and Key by storage
// sources. Format overrides extension sniffing ("json", "jsonl" or "parquet").
type DocumentConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Type      string `mapstructure:"type"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
	// LocalRoot is the directory served as the image root when Type is "local".
	LocalRoot string `mapstructure:"local_root"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN builds the driver-specific connection string.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	default:
		return c.Path
	}
}

type HTTPClientConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

// Validate checks that each document source names a known kind and the
// location that kind needs.
func (c *Config) Validate() error {
	if err := c.Corpus.validate("corpus", true); err != nil {
		return err
	}
	return c.Exhibition.validate("exhibition", false)
}

func (d DocumentConfig) validate(name string, allowDatabase bool) error {
	switch d.Source {
	case SourceFile:
		if d.Path == "" {
			return fmt.Errorf("%s.path is required for file source", name)
		}
	case SourceHTTP:
		if d.URL == "" {
			return fmt.Errorf("%s.url is required for http source", name)
		}
	case SourceStorage:
		if d.Key == "" {
			return fmt.Errorf("%s.key is required for storage source", name)
		}
	case SourceDatabase:
		if !allowDatabase {
			return fmt.Errorf("%s cannot be loaded from the database", name)
		}
	default:
		return fmt.Errorf("unknown %s.source %q", name, d.Source)
	}

	switch strings.ToLower(d.Format) {
	case "", "json", "jsonl", "parquet":
	default:
		return fmt.Errorf("unknown %s.format %q", name, d.Format)
	}
	return nil
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("storage.endpoint", "STORAGE_ENDPOINT")
	v.BindEnv("storage.access_key", "STORAGE_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "STORAGE_SECRET_KEY")
	v.BindEnv("storage.bucket", "STORAGE_BUCKET")
	v.BindEnv("storage.public_url", "STORAGE_PUBLIC_URL")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("server.admin_token", "ADMIN_TOKEN")
	v.BindEnv("corpus.url", "CORPUS_URL")
	v.BindEnv("exhibition.url", "EXHIBITION_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("corpus.source", SourceFile)
	v.SetDefault("corpus.path", "./data/vlm_corpus.json")
	v.SetDefault("corpus.key", "data/vlm_corpus.json")
	v.SetDefault("exhibition.source", SourceFile)
	v.SetDefault("exhibition.path", "./data/gallery.json")
	v.SetDefault("exhibition.key", "data/gallery.json")
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_root", "./public")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.bucket", "machines-eye")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/gallery.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.retry_count", 2)
}
