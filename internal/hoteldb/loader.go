package hoteldb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/username/hotel-reservations/internal/hotel"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a database document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, path)
	}
}

// Loader reads hotel databases from YAML or JSON documents
type Loader struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{
		validate: newValidator(),
		logger:   logger,
	}
}

// Load reads and validates the database stored at path
func (l *Loader) Load(path string) (hotel.DB, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open hotel database at '%s' for reading: %w", path, err)
	}
	defer file.Close()

	db, err := l.Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel database '%s': %w", path, err)
	}

	l.logger.Info("Hotel database loaded",
		zap.String("file", path),
		zap.String("format", string(format)),
		zap.Int("hotels", len(db)))

	return db, nil
}

// Decode reads a database document from r. The document is a list of hotels;
// an empty document is an empty database.
func (l *Loader) Decode(r io.Reader, format Format) (hotel.DB, error) {
	var docs []hotelDocument

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to deserialize hotel database: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to deserialize hotel database: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}

	if err := validateDocuments(l.validate, docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabase, err)
	}

	if len(docs) == 0 {
		l.logger.Warn("Hotel database is empty, every booking will fail")
	}

	db := make(hotel.DB, 0, len(docs))
	for i := range docs {
		db = append(db, docs[i].toHotel())
	}

	return db, nil
}
