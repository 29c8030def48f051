package service_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/phonebook"
	"github.com/go-ports/bluebook/internal/service"
)

func TestNew_HappyPath(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	svc, err := service.New(home, "")
	c.Assert(err, qt.IsNil)
	c.Assert(svc.BookHome, qt.Equals, home)
	c.Assert(svc.Format, qt.Equals, phonebook.FormatJSON)
	c.Assert(svc.StorePath(), qt.Equals, filepath.Join(home, "database", "phonebook.json"))
	c.Assert(svc.ExportsDir(), qt.Equals, filepath.Join(home, "exports"))

	// The database directory is created eagerly.
	info, err := os.Stat(filepath.Join(home, "database"))
	c.Assert(err, qt.IsNil)
	c.Assert(info.IsDir(), qt.IsTrue)
}

func TestNew_FormatResolution(t *testing.T) {
	c := qt.New(t)

	c.Run("configured format", func(c *qt.C) {
		home := t.TempDir()
		err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("book:\n  format: yaml\n"), 0o600)
		c.Assert(err, qt.IsNil)

		svc, err := service.New(home, "")
		c.Assert(err, qt.IsNil)
		c.Assert(svc.Format, qt.Equals, phonebook.FormatYAML)
		c.Assert(svc.StorePath(), qt.Equals, filepath.Join(home, "database", "phonebook.yaml"))
	})

	c.Run("override beats configured format", func(c *qt.C) {
		home := t.TempDir()
		err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("book:\n  format: yaml\n"), 0o600)
		c.Assert(err, qt.IsNil)

		svc, err := service.New(home, "json")
		c.Assert(err, qt.IsNil)
		c.Assert(svc.Format, qt.Equals, phonebook.FormatJSON)
	})

	c.Run("invalid override fails", func(c *qt.C) {
		_, err := service.New(t.TempDir(), "toml")
		c.Assert(err, qt.ErrorIs, phonebook.ErrUnknownFormat)
	})
}

func TestLoadPersist_RoundTrip(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	svc, err := service.New(home, "")
	c.Assert(err, qt.IsNil)

	c.Run("missing store file yields an empty phonebook", func(c *qt.C) {
		pb, err := svc.Load()
		c.Assert(err, qt.IsNil)
		c.Assert(pb.Len(), qt.Equals, 0)
	})

	c.Run("persist then load", func(c *qt.C) {
		pb := phonebook.New()
		pb.Add(contact.New("Jane", "Smith", "555-1111", "1 Oak St"))
		c.Assert(svc.Persist(pb), qt.IsNil)

		loaded, err := svc.Load()
		c.Assert(err, qt.IsNil)
		c.Assert(loaded.Len(), qt.Equals, 1)
		c.Assert(loaded.Contacts()[0], qt.Equals, contact.New("Jane", "Smith", "555-1111", "1 Oak St"))
	})
}

func TestExportsDir_Configured(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	custom := filepath.Join(home, "elsewhere")
	err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("export:\n  dir: "+custom+"\n"), 0o600)
	c.Assert(err, qt.IsNil)

	svc, err := service.New(home, "")
	c.Assert(err, qt.IsNil)
	c.Assert(svc.ExportsDir(), qt.Equals, custom)
}

func TestExport_WritesUnderExportsDir(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	svc, err := service.New(home, "")
	c.Assert(err, qt.IsNil)

	pb := phonebook.New()
	pb.Add(contact.New("Sam", "Lee", "555-3333", ""))

	path, err := svc.Export(pb, phonebook.FormatYAML)
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Dir(path), qt.Equals, svc.ExportsDir())

	htmlPath, err := svc.ExportHTML(pb)
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Dir(htmlPath), qt.Equals, svc.ExportsDir())
}
