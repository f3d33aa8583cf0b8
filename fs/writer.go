// Package fs saves read topics as markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/topicreader"
	"gopkg.in/yaml.v3"
)

// DocumentPath returns the file path, relative to the output directory,
// for a document. Topics are stored by ID; other pages mirror their URL path.
// Example: https://linux.do/t/topic/42 → topic-42.md
func DocumentPath(doc *topicreader.ExtractedDocument) (string, error) {
	if id := topicreader.TopicID(doc.URL); id != "" {
		return "topic-" + id + ".md", nil
	}

	u, err := url.Parse(doc.URL)
	if err != nil {
		return "", topicreader.Errorf(topicreader.EINVALID, "invalid document URL %q", doc.URL)
	}

	p := path.Clean("/" + u.Path)
	if p == "/" {
		return "index.md", nil
	}
	return strings.TrimPrefix(p, "/") + ".md", nil
}

// frontmatter is the YAML header of a saved document.
type frontmatter struct {
	Source    string `yaml:"source"`
	Title     string `yaml:"title"`
	Published string `yaml:"published,omitempty"`
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *topicreader.ExtractedDocument) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:    doc.URL,
		Title:     doc.Title,
		Published: doc.Date,
	})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(doc.Markdown)
	b.WriteString("\n")
	return b.String(), nil
}

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes doc to disk and returns the path of the new file.
func (w *Writer) WriteDocument(ctx context.Context, doc *topicreader.ExtractedDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := DocumentPath(doc)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
