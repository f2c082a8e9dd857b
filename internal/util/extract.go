package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// minResumeChars guards against scanned or empty PDFs whose text layer is
// too thin to analyze.
const minResumeChars = 100

// ExtractPDFText pulls the text layer out of a PDF resume, page by page.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if len(pageText) > 0 {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (document might be scanned or empty)")
	}
	if len(result) < minResumeChars {
		return "", fmt.Errorf("content too short for meaningful analysis")
	}
	return result, nil
}
