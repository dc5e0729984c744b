package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	CORSAllowedOrigins          []string
	SwaggerEnabled              bool
	PprofEnabled                bool
	PprofAddr                   string
	FotMobBaseURL               string
	FotMobAccessToken           string
	FotMobTimeout               time.Duration
	FotMobMaxRetries            int
	FotMobCircuitEnabled        bool
	FotMobCircuitFailureCount   int
	FotMobCircuitOpenTimeout    time.Duration
	FotMobCircuitHalfOpenMaxReq int
	CacheTTL                    time.Duration
	PenaltyEnrichmentWorkers    int
	FixturesLimit               int
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	fotMobBaseURL := strings.TrimSpace(getEnv("FOTMOB_BASE_URL", "https://www.fotmob.com/api"))
	fotMobTimeout, err := time.ParseDuration(getEnv("FOTMOB_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_TIMEOUT: %w", err)
	}
	if fotMobTimeout <= 0 {
		return Config{}, fmt.Errorf("FOTMOB_TIMEOUT must be > 0")
	}
	fotMobMaxRetries, err := getEnvAsInt("FOTMOB_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_MAX_RETRIES: %w", err)
	}
	if fotMobMaxRetries < 0 {
		return Config{}, fmt.Errorf("FOTMOB_MAX_RETRIES must be >= 0")
	}

	fotMobCircuitEnabled, err := strconv.ParseBool(getEnv("FOTMOB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_CIRCUIT_ENABLED: %w", err)
	}
	fotMobCircuitFailureCount, err := getEnvAsInt("FOTMOB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if fotMobCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOTMOB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	fotMobCircuitOpenTimeout, err := time.ParseDuration(getEnv("FOTMOB_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if fotMobCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FOTMOB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	fotMobCircuitHalfOpenMaxReq, err := getEnvAsInt("FOTMOB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if fotMobCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FOTMOB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	penaltyWorkers, err := getEnvAsInt("PENALTY_ENRICHMENT_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse PENALTY_ENRICHMENT_WORKERS: %w", err)
	}
	if penaltyWorkers < 1 {
		return Config{}, fmt.Errorf("PENALTY_ENRICHMENT_WORKERS must be >= 1")
	}

	fixturesLimit, err := getEnvAsInt("FIXTURES_LIMIT", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse FIXTURES_LIMIT: %w", err)
	}
	if fixturesLimit < 1 {
		return Config{}, fmt.Errorf("FIXTURES_LIMIT must be >= 1")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "90s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	if budget := coldUpstreamBudget(fotMobTimeout, fotMobMaxRetries); writeTimeout < budget {
		return Config{}, fmt.Errorf("APP_WRITE_TIMEOUT must be >= %s to cover a cold league view", budget)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "football-stats-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:              swaggerEnabled,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		FotMobBaseURL:               fotMobBaseURL,
		FotMobAccessToken:           strings.TrimSpace(getEnv("FOTMOB_ACCESS_TOKEN", "")),
		FotMobTimeout:               fotMobTimeout,
		FotMobMaxRetries:            fotMobMaxRetries,
		FotMobCircuitEnabled:        fotMobCircuitEnabled,
		FotMobCircuitFailureCount:   fotMobCircuitFailureCount,
		FotMobCircuitOpenTimeout:    fotMobCircuitOpenTimeout,
		FotMobCircuitHalfOpenMaxReq: fotMobCircuitHalfOpenMaxReq,
		CacheTTL:                    cacheTTL,
		PenaltyEnrichmentWorkers:    penaltyWorkers,
		FixturesLimit:               fixturesLimit,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.FotMobBaseURL == "" {
		return Config{}, fmt.Errorf("FOTMOB_BASE_URL cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

// coldUpstreamSteps is the longest chain of sequential upstream calls behind one request:
// the league fetch, up to three season lookups, then the parallel leaderboard fan-out.
const coldUpstreamSteps = 5

func coldUpstreamBudget(perRequest time.Duration, retries int) time.Duration {
	return time.Duration(coldUpstreamSteps*(retries+1)) * perRequest
}
