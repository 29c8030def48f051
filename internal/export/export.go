// Package export writes timestamped phonebook snapshots to an exports
// directory, in json, yaml, or browsable html form.
package export

import (
	"fmt"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-ports/bluebook/internal/phonebook"
)

// timestampLayout produces filenames that sort chronologically.
const timestampLayout = "2006-01-02_15-04-05"

var htmlTemplate = template.Must(template.New("contacts").Parse(`<html>
<head>
<title>Contact Information</title>
</head>
<body>
{{range .}}<div>
<h2>{{.FullName}}</h2>
<p>First Name: {{.FirstName}}</p>
<p>Last Name: {{.LastName}}</p>
<p>Phone: {{.Phone}}</p>
<p>Address: {{.Address}}</p>
</div>
{{end}}</body>
</html>
`))

// Book writes pb to dir in the given wire format and returns the path.
// The file is named phonebook-export-<timestamp>.<ext>.
func Book(pb *phonebook.Phonebook, dir string, format phonebook.Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export.Book: %w", err)
	}
	name := fmt.Sprintf("phonebook-export-%s.%s", time.Now().Format(timestampLayout), format.Ext())
	path := filepath.Join(dir, name)
	if err := pb.Save(path, format); err != nil {
		return "", fmt.Errorf("export.Book: %w", err)
	}
	return path, nil
}

// HTML writes a browsable snapshot of pb to dir and returns the path.
func HTML(pb *phonebook.Phonebook, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export.HTML: %w", err)
	}
	name := fmt.Sprintf("phonebook-html-%s.html", time.Now().Format(timestampLayout))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export.HTML: %w", err)
	}
	if err := htmlTemplate.Execute(f, pb.Contacts()); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("export.HTML: render: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export.HTML: %w", err)
	}
	return path, nil
}

// OpenBrowser opens path with the platform's default browser.
func OpenBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
