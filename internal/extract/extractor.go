// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kailas-cloud/resumerank/internal/domain"
)

// Result is the outcome of one extraction.
type Result struct {
	Name string
	Text string
}

// Extractor converts uploaded resume files into plain text.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the text content of the file. The candidate name is
// the base filename without its extension. Supported types are .pdf
// and .txt; anything else returns domain.ErrUnsupportedFileType.
func (e *Extractor) Extract(filename string, data []byte) (Result, error) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if name == "" {
		name = filepath.Base(filename)
	}

	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".txt":
		text = string(data)
	default:
		return Result{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, filepath.Ext(filename))
	}
	if err != nil {
		return Result{}, err
	}

	if strings.TrimSpace(text) == "" {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, filename)
	}
	return Result{Name: name, Text: text}, nil
}

// extractPDF reads text page by page. Pages that fail to decode are
// skipped; the whole file fails only when no page yields text.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var buf strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
