// Package pdf wraps PDF text extraction behind a small interface so the
// analysis services never depend on a concrete parser.
package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the extracted content of one PDF file.
type Document struct {
	Filename   string   `json:"filename"`
	Pages      int      `json:"pages"`
	TextByPage []string `json:"text_by_page"`
	FullText   string   `json:"full_text"`
}

// Extractor turns a PDF file into plain text.
type Extractor interface {
	Extract(path string) (*Document, error)
}

type ledongthucExtractor struct{}

// NewExtractor returns the default extractor implementation.
func NewExtractor() Extractor {
	return ledongthucExtractor{}
}

func (ledongthucExtractor) Extract(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{
		Filename: filepath.Base(path),
		Pages:    reader.NumPage(),
	}

	var full strings.Builder
	for pageNum := 1; pageNum <= doc.Pages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			doc.TextByPage = append(doc.TextByPage, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not sink the whole document.
			doc.TextByPage = append(doc.TextByPage, "")
			continue
		}
		doc.TextByPage = append(doc.TextByPage, text)
		full.WriteString(text)
		full.WriteString("\n")
	}

	doc.FullText = full.String()
	return doc, nil
}
