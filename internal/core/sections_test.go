package core

import (
	"testing"

	"symptom-checker/pkg/api"

	"github.com/stretchr/testify/assert"
)

const fullReply = `### GIVEN SYMPTOMS
- Fever
- Cough

### POSSIBLE CAUSES
- **Common cold:** likely viral.

### CURE
- **For Common cold:** rest and fluids.

### PRECAUTIONS OR PREVENTIONS
- Wash hands often.

### EXPERT ADVICE
- Consult a doctor.

### EMERGENCY LEVEL
- **Low:** symptoms are mild.
`

func TestParseSectionsAllHeadings(t *testing.T) {
	analysis := ParseSections(fullReply)

	assert.Equal(t, api.StructuredAnalysis{
		GivenSymptoms:            "- Fever\n- Cough",
		PossibleCauses:           "- **Common cold:** likely viral.",
		Cure:                     "- **For Common cold:** rest and fluids.",
		PrecautionsOrPreventions: "- Wash hands often.",
		ExpertAdvice:             "- Consult a doctor.",
		EmergencyLevel:           "- **Low:** symptoms are mild.",
	}, analysis)
}

func TestParseSectionsEmpty(t *testing.T) {
	assert.Equal(t, api.DefaultAnalysis(), ParseSections(""))
}

func TestParseSectionsNoHeadings(t *testing.T) {
	assert.Equal(t, api.DefaultAnalysis(), ParseSections("I cannot help with that request."))
}

func TestParseSectionsMissingHeadings(t *testing.T) {
	reply := "### POSSIBLE CAUSES\nflu\n\n### EMERGENCY LEVEL\nHigh"

	analysis := ParseSections(reply)
	assert.Equal(t, "flu", analysis.PossibleCauses)
	assert.Equal(t, "High", analysis.EmergencyLevel)
	assert.Equal(t, api.NoInformation, analysis.GivenSymptoms)
	assert.Equal(t, api.NoInformation, analysis.Cure)
	assert.Equal(t, api.NoInformation, analysis.PrecautionsOrPreventions)
	assert.Equal(t, api.NoInformation, analysis.ExpertAdvice)
}

func TestParseSectionsCaseInsensitive(t *testing.T) {
	reply := "### Given Symptoms\nheadache\n###  expert   advice:\nsee a doctor\n### **Cure**\nwater"

	analysis := ParseSections(reply)
	assert.Equal(t, "headache", analysis.GivenSymptoms)
	assert.Equal(t, "see a doctor", analysis.ExpertAdvice)
	assert.Equal(t, "water", analysis.Cure)
}

func TestParseSectionsKeepsSubHeadings(t *testing.T) {
	reply := "### POSSIBLE CAUSES\n#### Common cold\nviral infection\n#### Flu\ninfluenza\n\n### CURE\nrest"

	analysis := ParseSections(reply)
	assert.Equal(t, "#### Common cold\nviral infection\n#### Flu\ninfluenza", analysis.PossibleCauses)
	assert.Equal(t, "rest", analysis.Cure)
}

func TestParseSectionsDeeperHeadingIsNotASection(t *testing.T) {
	reply := "### EXPERT ADVICE\nsee a doctor\n#### CURE\nnot a section"

	analysis := ParseSections(reply)
	assert.Equal(t, "see a doctor\n#### CURE\nnot a section", analysis.ExpertAdvice)
	assert.Equal(t, api.NoInformation, analysis.Cure)
}

func TestParseSectionsMarkerNeedsSpace(t *testing.T) {
	reply := "### CURE\nrest\n###EMERGENCY LEVEL\nHigh\n###\nmore"

	analysis := ParseSections(reply)
	assert.Equal(t, "rest\n###EMERGENCY LEVEL\nHigh\n###\nmore", analysis.Cure)
	assert.Equal(t, api.NoInformation, analysis.EmergencyLevel)
}

func TestParseSectionsIgnoresPreamble(t *testing.T) {
	reply := "Sure, here is the analysis.\n\n### CURE\nrest\n"

	analysis := ParseSections(reply)
	assert.Equal(t, "rest", analysis.Cure)
	assert.Equal(t, api.NoInformation, analysis.GivenSymptoms)
}

func TestParseSectionsUnknownHeadingEndsSection(t *testing.T) {
	reply := "### CURE\nrest\n### NOTES\nunrelated text"

	analysis := ParseSections(reply)
	assert.Equal(t, "rest", analysis.Cure)
	assert.NotContains(t, analysis.Cure, "unrelated")
}

func TestParseSectionsEmptyBody(t *testing.T) {
	reply := "### CURE\n\n### EXPERT ADVICE\nconsult"

	analysis := ParseSections(reply)
	assert.Equal(t, api.NoInformation, analysis.Cure)
	assert.Equal(t, "consult", analysis.ExpertAdvice)
}

func TestParseSectionsLastHeadingWins(t *testing.T) {
	reply := "### CURE\nfirst\n### CURE\nsecond"

	assert.Equal(t, "second", ParseSections(reply).Cure)
}

func TestParseSectionsContainedHeading(t *testing.T) {
	reply := "### 3. CURE AND TREATMENT\nrest"

	assert.Equal(t, "rest", ParseSections(reply).Cure)
}

func TestParseSectionsWindowsLineEndings(t *testing.T) {
	reply := "### CURE\r\nrest\r\n### EMERGENCY LEVEL\r\nLow\r\n"

	analysis := ParseSections(reply)
	assert.Equal(t, "rest", analysis.Cure)
	assert.Equal(t, "Low", analysis.EmergencyLevel)
}

func TestParseSectionsIdempotent(t *testing.T) {
	assert.Equal(t, ParseSections(fullReply), ParseSections(fullReply))
}

func TestSystemPromptHasEveryHeading(t *testing.T) {
	// parsing the template itself must find every section
	analysis := ParseSections(SystemPrompt)
	for _, field := range []string{
		analysis.GivenSymptoms, analysis.PossibleCauses, analysis.Cure,
		analysis.PrecautionsOrPreventions, analysis.ExpertAdvice, analysis.EmergencyLevel,
	} {
		assert.NotEqual(t, api.NoInformation, field)
	}
}
