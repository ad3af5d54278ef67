// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext reads per-page text from PDF documents. The pipeline only
// ever sees page text in natural reading order; fonts, layout, and
// coordinates stay inside this package.
package pdftext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF reports that the source path does not carry a .pdf extension.
// The check runs before any page is read.
var ErrNotPDF = errors.New("source document is not a PDF")

// Document is an open PDF exposing page text by 1-based page number.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open validates path and opens the document for page-text access. The path
// must exist and carry a .pdf extension (case-insensitive); either failure
// surfaces immediately with no partial work.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source document: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %s", ErrNotPDF, path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &Document{f: f, r: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// PageText returns the text of 1-based page n. A missing or empty page
// yields an empty string, not an error; a page whose content cannot be
// decoded yields an error the caller may recover from.
func (d *Document) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting text from page %d: %w", n, err)
	}
	return text, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}
