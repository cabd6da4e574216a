package pdf

// ExtractPagesRequest asks for the per-page text of one PDF document.
type ExtractPagesRequest struct {
	Path string
}

// ExtractPagesResult carries the ordered per-page text recovered from a PDF.
// Pages preserve reading order; layout fidelity is not guaranteed (columns
// may interleave in the linear text).
type ExtractPagesResult struct {
	Path      string
	Pages     []string
	PageCount int
	Size      int64
}

// ValidateFileRequest asks whether a file is a readable PDF.
type ValidateFileRequest struct {
	Path string
}

// ValidateFileResult reports the validation outcome. Message is set when
// Valid is false.
type ValidateFileResult struct {
	Path    string
	Valid   bool
	Message string
}
