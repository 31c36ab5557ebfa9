package ai

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/MKhiriev/unibrain/models"
)

// ExtractText returns the text a summary is generated from. PDFs are parsed,
// plain text is used as is and anything else gets a placeholder.
func ExtractText(file models.UploadedFile) (string, error) {
	switch {
	case isPDF(file):
		return ExtractTextFromPDF(file.Data)
	case strings.HasPrefix(file.ContentType, "text/"):
		return string(file.Data), nil
	default:
		return placeholderContent(file.Name), nil
	}
}

// ExtractTextFromPDF extracts the plain text of every readable page.
func ExtractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip problematic pages instead of failing entirely
			continue
		}
		sb.WriteString(strings.Join(strings.Fields(text), " "))
		sb.WriteByte('\n')
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF")
	}
	return text, nil
}

func isPDF(file models.UploadedFile) bool {
	return file.ContentType == "application/pdf" || strings.EqualFold(filepath.Ext(file.Name), ".pdf")
}

func placeholderContent(name string) string {
	return fmt.Sprintf("Mock extracted content from %s. This would contain the actual text content of the PDF document, which would then be analyzed by the AI service for summarization and quality assessment.", name)
}
