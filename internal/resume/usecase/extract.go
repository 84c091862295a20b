package usecase

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// extractText parses the uploaded file into plain text based on its
// extension. Unknown extensions are accepted as plain text when the content
// is valid UTF-8.
func extractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
		}
		return string(data), nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		builder.WriteString(text)
	}
	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw word/document.xml markup.
	return wordMarkupText(doc.Editable().GetContent()), nil
}

// wordMarkupText reduces WordprocessingML markup to its text content. Runs of
// text within a paragraph concatenate; paragraph and tab boundaries become
// whitespace.
func wordMarkupText(markup string) string {
	decoder := xml.NewDecoder(strings.NewReader(markup))
	decoder.Strict = false

	var builder strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.CharData:
			builder.Write(t)
		case xml.StartElement:
			if t.Name.Local == "tab" {
				builder.WriteString("\t")
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				builder.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(builder.String())
}
