// Package document extracts plain text from uploaded resume files.
// Supported types are PDF and DOCX; everything else is rejected here, at the
// boundary, before any AI processing happens.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Magic byte prefixes for the supported types: %PDF and the ZIP header DOCX
// containers start with. Content that does not match its declared type is
// rejected regardless of the Content-Type header.
var magicBytes = map[string][]byte{
	MIMEPDF:  {0x25, 0x50, 0x44, 0x46},
	MIMEDocx: {0x50, 0x4B, 0x03, 0x04},
}

// UnsupportedTypeError is returned for any content type other than PDF or DOCX.
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s. Please upload a PDF or DOCX", e.ContentType)
}

// Parser implements resume text extraction. It is stateless and safe for
// concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ExtractText returns the plain text content of the document.
func (p *Parser) ExtractText(data []byte, contentType string) (string, error) {
	// Headers may carry parameters, e.g. "application/pdf; charset=binary"
	mime := strings.TrimSpace(strings.Split(contentType, ";")[0])

	magic, ok := magicBytes[mime]
	if !ok {
		return "", &UnsupportedTypeError{ContentType: contentType}
	}
	if !bytes.HasPrefix(data, magic) {
		return "", fmt.Errorf("file content does not match declared type %s", mime)
	}

	switch mime {
	case MIMEPDF:
		return extractPDFText(data)
	default:
		return extractDocxText(data)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
