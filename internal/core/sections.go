package core

import (
	"strings"

	"symptom-checker/pkg/api"
)

type section struct {
	heading string
	body    []string
}

// headingTitle reports whether line is a section heading: the marker
// followed by a space or tab. Deeper headings such as "####" stay part of
// the enclosing section's body.
func headingTitle(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) <= len(HeadingMarker) || !strings.HasPrefix(trimmed, HeadingMarker) {
		return "", false
	}
	switch trimmed[len(HeadingMarker)] {
	case ' ', '\t':
		return strings.TrimSpace(trimmed[len(HeadingMarker):]), true
	}
	return "", false
}

// splitSections cuts the reply into heading/body pairs. Any text before the
// first heading line is dropped.
func splitSections(reply string) []section {
	var sections []section

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if title, ok := headingTitle(line); ok {
			sections = append(sections, section{heading: title})
			continue
		}
		if len(sections) > 0 {
			last := &sections[len(sections)-1]
			last.body = append(last.body, line)
		}
	}

	return sections
}

func normalizeHeading(heading string) string {
	heading = strings.ToUpper(heading)
	heading = strings.Join(strings.Fields(heading), " ")
	return strings.Trim(heading, " *:_.")
}

// matchHeading resolves a heading to one of SectionHeadings. An exact match
// is preferred; otherwise the first vocabulary entry contained in the heading
// is used.
func matchHeading(heading string) (string, bool) {
	normalized := normalizeHeading(heading)
	if normalized == "" {
		return "", false
	}

	for _, target := range SectionHeadings {
		if normalized == target {
			return target, true
		}
	}
	for _, target := range SectionHeadings {
		if strings.Contains(normalized, target) {
			return target, true
		}
	}
	return "", false
}

func setSection(analysis *api.StructuredAnalysis, target, content string) {
	switch target {
	case HeadingGivenSymptoms:
		analysis.GivenSymptoms = content
	case HeadingPossibleCauses:
		analysis.PossibleCauses = content
	case HeadingCure:
		analysis.Cure = content
	case HeadingPrecautionsOrPreventions:
		analysis.PrecautionsOrPreventions = content
	case HeadingExpertAdvice:
		analysis.ExpertAdvice = content
	case HeadingEmergencyLevel:
		analysis.EmergencyLevel = content
	}
}

// ParseSections extracts the six analysis sections from a model reply.
// Sections that cannot be found keep api.NoInformation; it never fails.
// A heading with an empty body also yields api.NoInformation rather than an
// empty string, so every field of the result is non-empty.
// When several headings resolve to the same section the later one wins.
func ParseSections(reply string) api.StructuredAnalysis {
	analysis := api.DefaultAnalysis()

	for _, s := range splitSections(reply) {
		target, ok := matchHeading(s.heading)
		if !ok {
			continue
		}
		content := strings.TrimSpace(strings.Join(s.body, "\n"))
		if content == "" {
			content = api.NoInformation
		}
		setSection(&analysis, target, content)
	}

	return analysis
}
