package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader recovers per-page plain text from marksheet PDF files.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractPages extracts the text of every page, in reading order. A page
// whose text cannot be decoded is skipped rather than failing the document;
// a document yielding no text at all is an error, since downstream parsing
// must not mistake extraction failure for an empty marksheet.
func (r *Reader) ExtractPages(req ExtractPagesRequest) (*ExtractPagesResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages, err := r.extractPageTexts(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	return &ExtractPagesResult{
		Path:      req.Path,
		Pages:     pages,
		PageCount: pdfReader.NumPage(),
		Size:      fileInfo.Size(),
	}, nil
}

// validatePDFFile performs basic validation on a PDF file.
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// extractPageTexts walks all pages and collects their plain text.
func (r *Reader) extractPageTexts(pdfReader *pdf.Reader) ([]string, error) {
	if pdfReader == nil {
		return nil, fmt.Errorf("pdf reader is nil")
	}

	pages := make([]string, 0, pdfReader.NumPage())
	totalLength := 0
	gotText := false

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			pages = append(pages, "")
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				pages = append(pages, content[:remaining])
				gotText = true
			}
			break
		}

		pages = append(pages, content)
		totalLength += len(content)
		if strings.TrimSpace(content) != "" {
			gotText = true
		}
	}

	if !gotText {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}

	return pages, nil
}
