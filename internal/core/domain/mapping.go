package domain

// MappingResult is the tagged outcome of parsing a symptom-mapping
// completion. Callers can distinguish a successful structured parse from
// the raw-text fallback instead of conflating both into a plain list.
type MappingResult struct {
	// Parsed is true when the completion was a valid JSON array.
	Parsed bool

	// Mappings holds the structured records when Parsed is true.
	Mappings []SymptomMapping

	// Raw is the original completion text, preserved for display and
	// debugging regardless of parse outcome.
	Raw string
}

// ConditionCode is one row of the legacy two-column mapping table.
type ConditionCode struct {
	// Condition is the proposed condition name.
	Condition string

	// ICD10 is the proposed ICD-10 code.
	ICD10 string
}
