// internal/extract/extract.go
// Package extract pulls plain text out of uploaded documents so a resume
// file can feed the same analysis pipeline as pasted text.
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"skillmatch/internal/common/errors"
)

const (
	ContentTypeText = "text/plain"
	ContentTypePDF  = "application/pdf"
)

// Text extracts plain text from a document by content type.
func Text(contentType string, data []byte) (string, error) {
	switch normalizeContentType(contentType) {
	case ContentTypeText:
		return string(data), nil
	case ContentTypePDF:
		return pdfText(data)
	default:
		return "", errors.NewUnsupportedDocumentError(contentType)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewExtractionFailedError(err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// normalizeContentType drops parameters like "; charset=utf-8".
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
