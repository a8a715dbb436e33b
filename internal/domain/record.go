package domain

import "strings"

// Record is a flat field→value mapping loaded from a domain corpus.
// Records are identified by their position in the corpus and never
// mutated after load.
type Record map[string]string

// Get returns the value of a field, or "" when the field is absent.
func (r Record) Get(field string) string { return r[field] }

// Project returns a copy of the record restricted to the given fields.
// Absent fields are skipped, matching the corpus schema being authoritative.
func (r Record) Project(fields []string) Record {
	out := make(Record, len(fields))
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = v
		}
	}
	return out
}

// SearchText concatenates the values of the given fields with single
// spaces. This is the document text handed to the tokenizer.
func (r Record) SearchText(fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, r[f])
	}
	return strings.Join(parts, " ")
}
