package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pauljones0/daftlistings/internal/models"
	"github.com/pauljones0/daftlistings/internal/validator"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// The validator caches struct metadata, so one instance serves every call.
var coordinateValidator = validator.New()

type Config struct {
	ListingFiles []string
	Origin       *models.Coordinates // nil disables distance output
	LogLevel     slog.Level
	LogFormat    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using process environment")
	}

	var files []string
	for _, f := range strings.Split(os.Getenv("LISTING_FILES"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}

	var origin *models.Coordinates
	if v := os.Getenv("ORIGIN"); v != "" {
		parsed, err := ParseOrigin(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORIGIN %q: %w", v, err)
		}
		origin = &parsed
	}

	logLevel := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	switch logFormat {
	case "":
		logFormat = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want %q or %q", logFormat, LogFormatText, LogFormatJSON)
	}

	return &Config{
		ListingFiles: files,
		Origin:       origin,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}, nil
}

// ParseOrigin reads a "latitude,longitude" pair in decimal degrees.
func ParseOrigin(s string) (models.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.Coordinates{}, fmt.Errorf("expected \"latitude,longitude\", got %d values", len(parts))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("longitude: %w", err)
	}
	c := models.Coordinates{Latitude: lat, Longitude: lon}
	if err := coordinateValidator.ValidateCoordinates(c); err != nil {
		return models.Coordinates{}, err
	}
	return c, nil
}

// NewLogger builds the slog handler selected by LOG_FORMAT.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
