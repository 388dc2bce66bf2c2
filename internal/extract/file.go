// Package extract retrieves policy documents and converts them to plain text.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/pkg/textutil"
	godocx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// minExtractedLength is the shortest text worth analyzing. Shorter
// extractions are indistinguishable from a scan or an empty form.
const minExtractedLength = 10

// File reads an uploaded document from its temporary path and extracts
// plain text. The declared filename decides the extractor: .pdf goes
// through PDF text extraction, .docx and .doc through the Word reader.
// Any other extension fails with KindUnsupportedType.
func File(path, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error

	switch ext {
	case ".pdf":
		text, err = fromPDF(path)
	case ".docx", ".doc":
		text, err = fromDOCX(path)
	default:
		return "", domain.E(domain.KindUnsupportedType, "extract_file",
			fmt.Errorf("%w: %q (only PDF and Word documents are supported)", domain.ErrUnsupportedType, ext))
	}
	if err != nil {
		return "", err
	}

	text = textutil.CollapseWhitespace(text)
	if len(text) < minExtractedLength {
		return "", domain.E(domain.KindEmptyContent, "extract_file",
			fmt.Errorf("%w: could not extract meaningful text from %s", domain.ErrEmptyContent, filename))
	}

	return text, nil
}

// fromPDF extracts the full-document text. No cleanup beyond what the
// extractor returns; File normalizes afterwards.
func fromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", domain.E(domain.KindEmptyContent, "parse_pdf", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", domain.E(domain.KindEmptyContent, "parse_pdf", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", domain.E(domain.KindEmptyContent, "parse_pdf", err)
	}

	return buf.String(), nil
}

// fromDOCX extracts raw text from the document body, discarding
// formatting. Paragraphs and tables are joined by newlines.
func fromDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", domain.E(domain.KindEmptyContent, "open_docx", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", domain.E(domain.KindEmptyContent, "stat_docx", err)
	}

	doc, err := godocx.Parse(f, info.Size())
	if err != nil {
		return "", domain.E(domain.KindEmptyContent, "parse_docx", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *godocx.Paragraph, *godocx.Table:
			fmt.Fprintln(&sb, item)
		}
	}

	return sb.String(), nil
}
