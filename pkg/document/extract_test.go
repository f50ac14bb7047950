package document_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-matcher-backend/pkg/document"
)

func TestExtractTextRejectsUnsupportedTypes(t *testing.T) {
	parser := document.NewParser()

	for _, contentType := range []string{"text/plain", "image/png", "application/json", ""} {
		t.Run(contentType, func(t *testing.T) {
			_, err := parser.ExtractText([]byte("hello"), contentType)
			assert.Error(t, err)

			var unsupported *document.UnsupportedTypeError
			assert.True(t, errors.As(err, &unsupported))
			assert.Contains(t, err.Error(), "unsupported file type")
		})
	}
}

func TestExtractTextRejectsMismatchedContent(t *testing.T) {
	parser := document.NewParser()

	t.Run("PDF header missing", func(t *testing.T) {
		_, err := parser.ExtractText([]byte("not a pdf at all"), document.MIMEPDF)
		assert.Error(t, err)

		var unsupported *document.UnsupportedTypeError
		assert.False(t, errors.As(err, &unsupported), "mismatch is not an unsupported-type error")
	})

	t.Run("DOCX header missing", func(t *testing.T) {
		_, err := parser.ExtractText([]byte("plain text"), document.MIMEDocx)
		assert.Error(t, err)
	})
}

func TestExtractTextStripsContentTypeParameters(t *testing.T) {
	parser := document.NewParser()

	// Parameterized header should still be recognized as PDF; the truncated
	// body then fails at the reader, not at the type check.
	_, err := parser.ExtractText([]byte("%PDF-1.4"), "application/pdf; charset=binary")
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "unsupported file type")
}
