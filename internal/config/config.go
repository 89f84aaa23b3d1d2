package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	ReplicaHosts    []string      `mapstructure:"replica_hosts"`      // Read replicas sharing the primary's credentials, empty disables read splitting
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"` // empty disables event publishing
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// EthereumConfig holds the token contract and RPC configuration
type EthereumConfig struct {
	RPCURL               string        `mapstructure:"rpc_url"`
	ChainID              domain.Chain  `mapstructure:"chain_id"`
	TokenAddress         string        `mapstructure:"token_address"`
	TokenDecimals        int32         `mapstructure:"token_decimals"`
	LookbackBlocks       uint64        `mapstructure:"lookback_blocks"`  // transfer history window
	LogPageSize          uint64        `mapstructure:"log_page_size"`    // blocks per eth_getLogs call
	OracleTimeout        time.Duration `mapstructure:"oracle_timeout"`   // per-call bound
	OracleMaxWorkers     int           `mapstructure:"oracle_max_workers"`
	BlockHeadTTL         time.Duration `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration `mapstructure:"block_head_stale_window"`
}

// RateLimitConfig holds the RPC rate limiter configuration
type RateLimitConfig struct {
	RedisURL                string        `mapstructure:"redis_url"` // empty uses the local limiter only
	KeyPrefix               string        `mapstructure:"key_prefix"`
	RequestsPerSecond       int           `mapstructure:"requests_per_second"`
	Burst                   int           `mapstructure:"burst"`
	MaxWaitTime             time.Duration `mapstructure:"max_wait_time"`
	LocalFallbackMultiplier float64       `mapstructure:"local_fallback_multiplier"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"` // empty allows every origin
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// DividendConfig holds dividend engine parameters
type DividendConfig struct {
	MinHoldingDays       int     `mapstructure:"min_holding_days"`
	DistributionRate     float64 `mapstructure:"distribution_rate"`
	DefaultTotalSupply   float64 `mapstructure:"default_total_supply"`
	AverageTokenPrice    float64 `mapstructure:"average_token_price"`
	DefaultMonthlyProfit float64 `mapstructure:"default_monthly_profit"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ethereum   EthereumConfig  `mapstructure:"ethereum"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Server     ServerConfig    `mapstructure:"server"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Dividend   DividendConfig  `mapstructure:"dividend"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ethereum.chain_id", string(domain.ChainPolygonMainnet))
	v.SetDefault("ethereum.token_decimals", 18)
	v.SetDefault("ethereum.lookback_blocks", 1200000)
	v.SetDefault("ethereum.log_page_size", 100000)
	v.SetDefault("ethereum.oracle_timeout", "10s")
	v.SetDefault("ethereum.oracle_max_workers", 8)
	v.SetDefault("ethereum.block_head_ttl", "15s")
	v.SetDefault("ethereum.block_head_stale_window", "2m")
	v.SetDefault("rate_limit.key_prefix", "cfd:rpc:limiter:")
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.max_wait_time", "30s")
	v.SetDefault("rate_limit.local_fallback_multiplier", 0.5)
	v.SetDefault("nats.stream_name", "DIVIDENDS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "cfd-api")
	v.SetDefault("dividend.min_holding_days", domain.MIN_HOLDING_PERIOD_DAYS)
	v.SetDefault("dividend.distribution_rate", 0.6)
	v.SetDefault("dividend.default_total_supply", float64(domain.DEFAULT_TOTAL_SUPPLY))
	v.SetDefault("dividend.average_token_price", 0.05)
	v.SetDefault("dividend.default_monthly_profit", float64(domain.DEFAULT_MONTHLY_PROFIT))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required values and ranges
func (c *APIConfig) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Ethereum.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if !common.IsHexAddress(c.Ethereum.TokenAddress) {
		return errors.New("ethereum.token_address must be a valid address")
	}
	if c.Ethereum.TokenDecimals < 0 || c.Ethereum.TokenDecimals > 36 {
		return errors.New("ethereum.token_decimals must be between 0 and 36")
	}
	if c.Ethereum.OracleTimeout <= 0 {
		return errors.New("ethereum.oracle_timeout must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate_limit.requests_per_second must be positive")
	}
	if c.Dividend.MinHoldingDays < 0 {
		return errors.New("dividend.min_holding_days cannot be negative")
	}
	if c.Dividend.DistributionRate <= 0 || c.Dividend.DistributionRate > 1 {
		return errors.New("dividend.distribution_rate must be in (0, 1]")
	}
	if c.Dividend.DefaultTotalSupply <= 0 {
		return errors.New("dividend.default_total_supply must be positive")
	}
	if c.Dividend.AverageTokenPrice <= 0 {
		return errors.New("dividend.average_token_price must be positive")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("CFD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.replica_hosts",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.token_address",
		"ethereum.token_decimals",
		"ethereum.lookback_blocks",
		"ethereum.log_page_size",
		"ethereum.oracle_timeout",
		"ethereum.oracle_max_workers",
		"ethereum.block_head_ttl",
		"ethereum.block_head_stale_window",
		// Rate limit
		"rate_limit.redis_url",
		"rate_limit.key_prefix",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.max_wait_time",
		"rate_limit.local_fallback_multiplier",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Dividend
		"dividend.min_holding_days",
		"dividend.distribution_rate",
		"dividend.default_total_supply",
		"dividend.average_token_price",
		"dividend.default_monthly_profit",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return c.dsnForHost(c.Host)
}

// ReplicaDSNs returns one connection string per configured read replica
func (c *DatabaseConfig) ReplicaDSNs() []string {
	dsns := make([]string, 0, len(c.ReplicaHosts))
	for _, host := range c.ReplicaHosts {
		if host = strings.TrimSpace(host); host != "" {
			dsns = append(dsns, c.dsnForHost(host))
		}
	}
	return dsns
}

func (c *DatabaseConfig) dsnForHost(host string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
