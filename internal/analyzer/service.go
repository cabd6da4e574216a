// Package analyzer orchestrates the marksheet analysis pipeline: upload
// persistence, PDF text recovery, record extraction and artifact export.
package analyzer

import (
	"errors"
	"fmt"
	"io"

	"github.com/marklytic/marksheet-analyzer/internal/export"
	"github.com/marklytic/marksheet-analyzer/internal/marksheet"
	"github.com/marklytic/marksheet-analyzer/internal/pdf"
)

// Named failures callers are expected to distinguish. Schema and record
// failures come from parsing; ErrExport means parsing succeeded but an
// artifact could not be written.
var (
	ErrSchemaUndetected = marksheet.ErrSchemaUndetected
	ErrNoRecords        = marksheet.ErrNoRecords
	ErrExport           = errors.New("export failed")
)

// Analysis is the outcome of one document analysis. Exactly one of Records
// or Percentages is populated depending on the detected marksheet family.
type Analysis struct {
	Family       string
	Records      []marksheet.StudentRecord
	Percentages  []marksheet.PercentageRecord
	JSONPath     string
	WorkbookPath string
}

// Service runs the analysis pipeline against an injected artifact store.
type Service struct {
	reader    *pdf.Reader
	validator *pdf.Validator
	store     *export.ArtifactStore
}

// NewService creates an analyzer service.
func NewService(maxFileSize int64, store *export.ArtifactStore) *Service {
	return &Service{
		reader:    pdf.NewReader(maxFileSize),
		validator: pdf.NewValidator(maxFileSize),
		store:     store,
	}
}

// AnalyzeUpload persists the uploaded document, then analyzes it. The
// upload is kept alongside the exported artifacts under a shared stem.
func (s *Service) AnalyzeUpload(upload io.Reader) (*Analysis, error) {
	stem := s.store.NewStem()

	path, err := s.store.SaveUpload(stem, ".pdf", upload)
	if err != nil {
		return nil, fmt.Errorf("cannot persist upload: %w", err)
	}

	return s.AnalyzeFile(path, stem)
}

// AnalyzeFile validates and reads a stored PDF, then analyzes its text.
// Extraction failures are surfaced before any parsing is attempted; empty
// input is never silently parsed.
func (s *Service) AnalyzeFile(pdfPath, stem string) (*Analysis, error) {
	validation, err := s.validator.ValidateFile(pdf.ValidateFileRequest{Path: pdfPath})
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validation.Valid {
		return nil, fmt.Errorf("invalid upload: %s", validation.Message)
	}

	extracted, err := s.reader.ExtractPages(pdf.ExtractPagesRequest{Path: pdfPath})
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	return s.AnalyzeDocument(marksheet.NewDocument(extracted.Pages), stem)
}

// AnalyzeDocument detects the marksheet family, extracts its records and
// writes the JSON and workbook artifacts.
func (s *Service) AnalyzeDocument(doc marksheet.Document, stem string) (*Analysis, error) {
	strategy := marksheet.DetectStrategy(doc)

	extraction, err := strategy.Extract(doc)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Family:       strategy.Family(),
		Records:      extraction.Students,
		Percentages:  extraction.Percentages,
		JSONPath:     s.store.Path(stem, ".json"),
		WorkbookPath: s.store.Path(stem, ".xlsx"),
	}

	if err := s.writeArtifacts(analysis, extraction); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	return analysis, nil
}

// writeArtifacts writes the family-appropriate JSON and workbook exports.
func (s *Service) writeArtifacts(analysis *Analysis, extraction *marksheet.Extraction) error {
	if extraction.Subjects != nil {
		if err := export.WritePercentagesJSON(analysis.JSONPath, extraction.Percentages); err != nil {
			return err
		}
		return export.WriteConsolidatedWorkbook(analysis.WorkbookPath, extraction.Percentages, extraction.Subjects)
	}

	if err := export.WriteRecordsJSON(analysis.JSONPath, extraction.Students); err != nil {
		return err
	}
	return export.WriteRecordsWorkbook(analysis.WorkbookPath, extraction.Students)
}
