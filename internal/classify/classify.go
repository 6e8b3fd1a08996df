// Package classify maps filenames and folder tokens to canonical department
// labels. Matching is an ordered substring scan: the first token found in the
// lowercased input wins. Order is part of the contract — when one token is a
// substring of another, list position decides, not specificity — so the
// mapping slice must never be reordered.
package classify

import "strings"

// Unclassified is returned when no token matches.
const Unclassified = "unclassified"

// Mapping binds a filename/folder token to its canonical department label.
// The token doubles as the storage folder name for that department.
type Mapping struct {
	Token string
	Label string
}

// DepartmentMappings is the fixed process-wide classification table.
var DepartmentMappings = []Mapping{
	{"nursing", "Nursing"},
	{"finance", "Finance"},
	{"emergency", "Emergency"},
	{"human-resources", "Human Resources"},
	{"operations", "Operations"},
	{"cybersecurity", "Cybersecurity"},
	{"diabetes-center", "Diabetes Center"},
	{"oncology-center", "Oncology Center"},
	{"home-healthcare", "Home Healthcare"},
	{"primary-care-population-health", "Primary Care & Population Health"},
	{"quality-management", "Quality Management"},
	{"patient-safety-risk-management", "Patient Safety & Risk Management"},
	{"infection-control", "Infection Control"},
	{"institutional-excellence", "Institutional Excellence"},
	{"corporate-communication", "Corporate Communication"},
	{"legal-affairs-compliance", "Legal Affairs & Compliance"},
	{"research-academic-affairs", "Research & Academic Affairs"},
	{"medical-management", "Medical Services Management"},
	{"medical-affairs", "Medical Support Services"},
	{"health-information-management", "Digital Health & Information Management"},
	{"public-services-policies", "Public Services Policies"},
	{"accountable-care-organization", "Accountable Care Organization"},
	{"clinical-nutrition", "Clinical Nutrition"},
}

// Classify returns the canonical label of the first token contained in text.
// ok is false when nothing matches; the label is then Unclassified.
func Classify(text string) (label string, ok bool) {
	normalized := strings.ToLower(text)
	for _, m := range DepartmentMappings {
		if strings.Contains(normalized, m.Token) {
			return m.Label, true
		}
	}
	return Unclassified, false
}
