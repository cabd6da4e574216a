package marksheet

// DetectStrategy picks the marksheet family for a document. The
// consolidated family is recognized by its structural anchor and subject
// table; everything else is handled as a gazette, whose own chunk filtering
// tolerates arbitrary non-record text.
func DetectStrategy(doc Document) RecordStrategy {
	if ExtractSubjectStructure(doc.Text) != nil {
		return ConsolidatedStrategy{}
	}
	return GazetteStrategy{}
}
