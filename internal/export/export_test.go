package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"

	"github.com/go-ports/bluebook/internal/contact"
	"github.com/go-ports/bluebook/internal/export"
	"github.com/go-ports/bluebook/internal/phonebook"
)

func sampleBook() *phonebook.Phonebook {
	pb := phonebook.New()
	pb.Add(contact.New("Jane", "Smith", "555-1111", "1 Oak St"))
	pb.Add(contact.New("Jane", "Doyle", "555-2222", "2 Pine St"))
	return pb
}

func TestBook_JSON_HappyPath(t *testing.T) {
	c := qt.New(t)

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := export.Book(sampleBook(), dir, phonebook.FormatJSON)
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Base(path), qt.Matches, `phonebook-export-\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.json`)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)

	var doc any
	c.Assert(json.Unmarshal(data, &doc), qt.IsNil)

	phone, err := jsonpath.Read(doc, `$["Jane Smith"].phone`)
	c.Assert(err, qt.IsNil)
	c.Assert(phone, qt.Equals, "555-1111")

	address, err := jsonpath.Read(doc, `$["Jane Doyle"].address`)
	c.Assert(err, qt.IsNil)
	c.Assert(address, qt.Equals, "2 Pine St")

	fullName, err := jsonpath.Read(doc, `$["Jane Doyle"].full_name`)
	c.Assert(err, qt.IsNil)
	c.Assert(fullName, qt.Equals, "Jane Doyle")
}

func TestBook_YAML_HappyPath(t *testing.T) {
	c := qt.New(t)

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := export.Book(sampleBook(), dir, phonebook.FormatYAML)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasSuffix(path, ".yaml"), qt.IsTrue)

	restored := phonebook.New()
	c.Assert(restored.Load(path, phonebook.FormatYAML), qt.IsNil)
	c.Assert(restored.Len(), qt.Equals, 2)
}

func TestHTML_HappyPath(t *testing.T) {
	c := qt.New(t)

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := export.HTML(sampleBook(), dir)
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Base(path), qt.Matches, `phonebook-html-.*\.html`)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	html := string(data)
	c.Assert(html, qt.Contains, "<title>Contact Information</title>")
	c.Assert(html, qt.Contains, "<h2>Jane Smith</h2>")
	c.Assert(html, qt.Contains, "<p>Phone: 555-2222</p>")
}

func TestHTML_EscapesMarkup(t *testing.T) {
	c := qt.New(t)

	pb := phonebook.New()
	pb.Add(contact.New("<b>Evil</b>", "User", "", ""))

	path, err := export.HTML(pb, t.TempDir())
	c.Assert(err, qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Not(qt.Contains), "<b>Evil</b>")
	c.Assert(string(data), qt.Contains, "&lt;b&gt;Evil&lt;/b&gt;")
}

func TestHTML_EmptyBook(t *testing.T) {
	c := qt.New(t)

	path, err := export.HTML(phonebook.New(), t.TempDir())
	c.Assert(err, qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "<body>")
	c.Assert(string(data), qt.Not(qt.Contains), "<div>")
}
