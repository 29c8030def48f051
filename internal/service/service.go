// Package service wires configuration, the phonebook store, and exports
// under a single book home.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ports/bluebook/internal/config"
	"github.com/go-ports/bluebook/internal/export"
	"github.com/go-ports/bluebook/internal/phonebook"
)

// Service owns the paths and configuration for one book home.
type Service struct {
	BookHome string
	Config   *config.BluebookConfig
	Format   phonebook.Format
}

// New initialises a Service rooted at bookHome.
// If bookHome is empty it is resolved via config.GetBookHome.
// formatOverride, when non-empty, takes precedence over the configured
// store format.
func New(bookHome, formatOverride string) (*Service, error) {
	if bookHome == "" {
		bookHome = config.GetBookHome()
	}

	if err := os.MkdirAll(filepath.Join(bookHome, "database"), 0o755); err != nil {
		return nil, fmt.Errorf("service.New: create database dir: %w", err)
	}

	cfg, err := config.Load(filepath.Join(bookHome, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}

	name := cfg.Book.Format
	if formatOverride != "" {
		name = formatOverride
	}
	format, err := phonebook.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return &Service{BookHome: bookHome, Config: cfg, Format: format}, nil
}

// StorePath returns the phonebook store file for the active format.
func (s *Service) StorePath() string {
	return filepath.Join(s.BookHome, "database", "phonebook."+s.Format.Ext())
}

// ExportsDir returns the configured exports directory, defaulting to
// <book home>/exports.
func (s *Service) ExportsDir() string {
	if s.Config.Export.Dir != "" {
		return s.Config.Export.Dir
	}
	return filepath.Join(s.BookHome, "exports")
}

// Load reads the phonebook from the store file.
// A missing store file yields an empty phonebook.
func (s *Service) Load() (*phonebook.Phonebook, error) {
	pb := phonebook.New()
	err := pb.Load(s.StorePath(), s.Format)
	if errors.Is(err, os.ErrNotExist) {
		return pb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service.Load: %w", err)
	}
	return pb, nil
}

// Persist writes the phonebook back to the store file in one pass.
func (s *Service) Persist(pb *phonebook.Phonebook) error {
	if err := pb.Save(s.StorePath(), s.Format); err != nil {
		return fmt.Errorf("service.Persist: %w", err)
	}
	return nil
}

// Export writes a timestamped snapshot of pb in the given wire format and
// returns the exported path.
func (s *Service) Export(pb *phonebook.Phonebook, format phonebook.Format) (string, error) {
	return export.Book(pb, s.ExportsDir(), format)
}

// ExportHTML writes a browsable timestamped snapshot of pb and returns the
// exported path.
func (s *Service) ExportHTML(pb *phonebook.Phonebook) (string, error) {
	return export.HTML(pb, s.ExportsDir())
}
