package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Driver          string
	DSN             string
	NetworkFile     string
	Addr            string
	CORSOrigins     []string
	RouteCacheCap   int
	MaxAlternatives int
	StrictChange    bool
}

// LoadEnv reads .env and then .env.local, which overrides it. Missing files
// are ignored.
func LoadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

func FromFlagsServer() ServerConfig {
	LoadEnv()
	cfg, _ := ParseServer(flag.CommandLine, os.Args[1:])
	return cfg
}

// ParseServer registers the server flags on fs and parses args. Flag
// defaults come from the environment.
func ParseServer(fs *flag.FlagSet, args []string) (ServerConfig, error) {
	var cfg ServerConfig
	var origins string

	fs.StringVar(&cfg.Driver, "driver", getEnv("DB_DRIVER", "mysql"), "database driver: mysql, sqlite or pgx")
	fs.StringVar(&cfg.DSN, "dsn", os.Getenv("DB_DSN"), "database DSN; empty serves the network file instead")
	fs.StringVar(&cfg.NetworkFile, "network", os.Getenv("NETWORK_FILE"), "network YAML file; empty uses the built-in map")
	fs.StringVar(&cfg.Addr, "addr", getEnv("ADDR", ":8080"), "HTTP bind address")
	fs.StringVar(&origins, "cors-origins", getEnv("CORS_ORIGINS", "http://localhost:5173"), "comma separated allowed origins")
	fs.IntVar(&cfg.RouteCacheCap, "route-cache", getEnvInt("ROUTE_CACHE_CAP", 2048), "route cache capacity")
	fs.IntVar(&cfg.MaxAlternatives, "max-alternatives", getEnvInt("MAX_ALTERNATIVES", 0), "cap on listed alternative routes, 0 for no cap")
	fs.BoolVar(&cfg.StrictChange, "strict-change", getEnvBool("STRICT_ROUTE_CHANGE", false), "reject route changes whose midway station is off the route")

	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}
	cfg.CORSOrigins = splitList(origins)
	return cfg, nil
}

// NetworkConfig is the subset used by tools that only need the network source.
type NetworkConfig struct {
	Driver      string
	DSN         string
	NetworkFile string
}

func FromFlagsNetwork() NetworkConfig {
	LoadEnv()
	cfg, _ := ParseNetwork(flag.CommandLine, os.Args[1:])
	return cfg
}

func ParseNetwork(fs *flag.FlagSet, args []string) (NetworkConfig, error) {
	var cfg NetworkConfig
	fs.StringVar(&cfg.Driver, "driver", getEnv("DB_DRIVER", "mysql"), "database driver: mysql, sqlite or pgx")
	fs.StringVar(&cfg.DSN, "dsn", os.Getenv("DB_DSN"), "database DSN")
	fs.StringVar(&cfg.NetworkFile, "network", os.Getenv("NETWORK_FILE"), "network YAML file; empty uses the built-in map")
	if err := fs.Parse(args); err != nil {
		return NetworkConfig{}, err
	}
	return cfg, nil
}

func (c ServerConfig) Network() NetworkConfig {
	return NetworkConfig{Driver: c.Driver, DSN: c.DSN, NetworkFile: c.NetworkFile}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
