package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// DocumentParserService extracts plain text from an uploaded résumé held in memory.
type DocumentParserService interface {
	ExtractText(data []byte, filename string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	Format    DocumentFormat
	PageCount int
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText implements DocumentParserService. Every failure, including an
// unreadable file, is reported as ErrExtractionFailed.
func (p *documentParserService) ExtractText(data []byte, filename string) (*DocumentContent, error) {
	format, err := detectFormat(data, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var content *DocumentContent
	switch format {
	case FormatPDF:
		content, err = extractPDF(data)
	case FormatDOCX:
		content, err = extractDOCX(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	if strings.TrimSpace(content.Text) == "" {
		return nil, fmt.Errorf("%w: no text content found in %s", ErrExtractionFailed, format)
	}

	return content, nil
}

func detectFormat(data []byte, filename string) (DocumentFormat, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return FormatPDF, nil
	case bytes.HasPrefix(data, zipMagic) && strings.EqualFold(filepath.Ext(filename), ".docx"):
		return FormatDOCX, nil
	case len(data) == 0:
		return "", fmt.Errorf("empty upload")
	}
	return "", fmt.Errorf("unsupported document type: %q", filepath.Ext(filename))
}

// extractPDF joins per-page text with "\n". A page that is missing or fails to
// decode contributes an empty string.
func extractPDF(data []byte) (content *DocumentContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, err = nil, fmt.Errorf("corrupt PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		pages = append(pages, pageText(r, pageIndex))
	}

	return &DocumentContent{
		Text:      strings.Join(pages, "\n"),
		Format:    FormatPDF,
		PageCount: totalPage,
	}, nil
}

func pageText(r *pdf.Reader, pageIndex int) (text string) {
	// Malformed content streams can panic inside the parser.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func extractDOCX(data []byte) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return &DocumentContent{
		Text:      docxPlainText(doc.Editable().GetContent()),
		Format:    FormatDOCX,
		PageCount: 1,
	}, nil
}

// docxPlainText keeps character data from word/document.xml and ends each
// paragraph with a newline.
func docxPlainText(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
