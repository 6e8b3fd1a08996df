package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedLabel string
		expectedOK    bool
	}{
		{
			name:          "token inside a structured filename",
			text:          "Q3-Emergency-Protocol.pdf",
			expectedLabel: "Emergency",
			expectedOK:    true,
		},
		{
			name:          "case insensitive",
			text:          "NURSING-handbook.docx",
			expectedLabel: "Nursing",
			expectedOK:    true,
		},
		{
			name:          "hyphenated multi-word token",
			text:          "2025-human-resources-policy.pdf",
			expectedLabel: "Human Resources",
			expectedOK:    true,
		},
		{
			name:          "no match",
			text:          "no-match-here.docx",
			expectedLabel: Unclassified,
			expectedOK:    false,
		},
		{
			name:          "empty input",
			text:          "",
			expectedLabel: Unclassified,
			expectedOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := Classify(tt.text)
			assert.Equal(t, tt.expectedLabel, label)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// medical-management precedes medical-affairs in the table, so a name
	// containing both tokens resolves to the earlier entry. List order, not
	// token specificity, decides.
	label, ok := Classify("medical-management-and-medical-affairs-joint-memo.pdf")
	assert.True(t, ok)
	assert.Equal(t, "Medical Services Management", label)

	// The same input reversed still matches the earlier table entry.
	label, ok = Classify("medical-affairs-medical-management.pdf")
	assert.True(t, ok)
	assert.Equal(t, "Medical Services Management", label)
}

func TestDepartmentMappingsStable(t *testing.T) {
	// The table is ordered configuration; downstream classification depends
	// on these exact positions.
	assert.Len(t, DepartmentMappings, 23)
	assert.Equal(t, Mapping{"nursing", "Nursing"}, DepartmentMappings[0])
	assert.Equal(t, Mapping{"emergency", "Emergency"}, DepartmentMappings[2])
	assert.Equal(t, Mapping{"clinical-nutrition", "Clinical Nutrition"}, DepartmentMappings[22])
}
