package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// StaticDir is the absolute path to the directory served at /static/.
	// Set via STATIC_DIR (relative paths are resolved against the process working directory at startup).
	StaticDir string

	// DefaultLocation tags readings whose sender did not set a location,
	// so a single dashboard can aggregate readings from a sensor that
	// doesn't send one.
	DefaultLocation string

	Driver          string
	DSN             string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	MQTTEnabled  bool
	MQTTBroker   string
	MQTTPort     int
	MQTTTopic    string
	MQTTClientID string

	MetarBaseURL        string
	MetarDefaultStation string
	MetarTimeout        time.Duration
}

func LoadFromEnv() (Config, error) {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "static"
	}
	staticDir, err = filepath.Abs(staticDir)
	if err != nil {
		return Config{}, fmt.Errorf("STATIC_DIR %q: %w", staticDir, err)
	}

	defaultLocation := strings.TrimSpace(os.Getenv("DEFAULT_LOCATION"))
	if defaultLocation == "" {
		defaultLocation = "strehlgasse"
	}

	driver := strings.TrimSpace(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	path := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if path == "" {
		path = "dev/sqlite/tempdash.db"
	}

	maxOpenConns, err := intFromEnv("DB_MAX_OPEN_CONNS", 1)
	if err != nil {
		return Config{}, err
	}
	maxIdleConns, err := intFromEnv("DB_MAX_IDLE_CONNS", 1)
	if err != nil {
		return Config{}, err
	}

	connMaxLifetimeStr := strings.TrimSpace(os.Getenv("DB_CONN_MAX_LIFETIME"))
	if connMaxLifetimeStr == "" {
		connMaxLifetimeStr = "0s"
	}
	connMaxLifetime, err := time.ParseDuration(connMaxLifetimeStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME %q: %w", connMaxLifetimeStr, err)
	}

	mqttEnabled, err := boolFromEnv("MQTT_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	mqttBroker := strings.TrimSpace(os.Getenv("MQTT_BROKER"))
	if mqttBroker == "" {
		mqttBroker = "localhost"
	}
	mqttPort, err := intFromEnv("MQTT_PORT", 1883)
	if err != nil {
		return Config{}, err
	}
	mqttTopic := strings.TrimSpace(os.Getenv("MQTT_TOPIC"))
	if mqttTopic == "" {
		mqttTopic = "tempdash/readings"
	}
	mqttClientID := strings.TrimSpace(os.Getenv("MQTT_CLIENT_ID"))
	if mqttClientID == "" {
		mqttClientID = "tempdash-server"
	}

	metarBaseURL := strings.TrimSpace(os.Getenv("METAR_BASE_URL"))
	if metarBaseURL == "" {
		metarBaseURL = "https://aviationweather.gov/api/data/metar"
	}
	metarStation := strings.TrimSpace(os.Getenv("METAR_DEFAULT_STATION"))
	if metarStation == "" {
		metarStation = "LSZH"
	}
	metarTimeoutStr := strings.TrimSpace(os.Getenv("METAR_TIMEOUT"))
	if metarTimeoutStr == "" {
		metarTimeoutStr = "10s"
	}
	metarTimeout, err := time.ParseDuration(metarTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid METAR_TIMEOUT %q: %w", metarTimeoutStr, err)
	}

	return Config{
		AppEnv:              appEnv,
		LogLevel:            level,
		HTTPAddr:            httpAddr,
		StaticDir:           staticDir,
		DefaultLocation:     defaultLocation,
		Driver:              driver,
		DSN:                 dsn,
		Path:                path,
		MaxOpenConns:        maxOpenConns,
		MaxIdleConns:        maxIdleConns,
		ConnMaxLifetime:     connMaxLifetime,
		MQTTEnabled:         mqttEnabled,
		MQTTBroker:          mqttBroker,
		MQTTPort:            mqttPort,
		MQTTTopic:           mqttTopic,
		MQTTClientID:        mqttClientID,
		MetarBaseURL:        metarBaseURL,
		MetarDefaultStation: metarStation,
		MetarTimeout:        metarTimeout,
	}, nil
}

func intFromEnv(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return n, nil
}

func boolFromEnv(key string, def bool) (bool, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
