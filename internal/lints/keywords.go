package lints

import (
	"fmt"
	"strings"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

// changeKeywords are the feature terms a PR description span must mention.
var changeKeywords = []string{"tier", "resolver", "test"}

// legalEntities are the entity, jurisdiction and ownership terms the legal
// boilerplate must retain verbatim.
var legalEntities = []string{"Sentry", "Delaware", "Codecov", "rights", "contributions"}

// evolutionKeywords mark the purpose section as describing an iterative
// first pass rather than a finished feature.
var evolutionKeywords = []string{"evolv", "first pass", "initial", "iterativ"}

// DetectChangeKeywords checks that the PR description span mentions each
// required feature term (case-insensitive). Not applicable when the section
// is absent.
func DetectChangeKeywords(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	section, ok := document.ExtractSection(doc.HeadingChanges)
	if !ok {
		return nil, nil
	}

	span := strings.ToLower(section.Span)
	var issues []tt.Issue
	for _, keyword := range changeKeywords {
		if strings.Contains(span, keyword) {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "change-keywords",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message: fmt.Sprintf("section %q should mention %q",
				doc.HeadingChanges, keyword),
			Start: tt.Position{Line: section.Heading.Line, Column: 1},
			End:   tt.Position{Line: section.Heading.Line, Column: 1},
		})
	}
	return issues, nil
}

// DetectPurposeKeywords checks that the purpose span explains the tier-by-plan
// differentiation and flags the work as evolving.
func DetectPurposeKeywords(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	section, ok := document.ExtractSection(doc.HeadingPurpose)
	if !ok {
		return nil, nil
	}

	span := strings.ToLower(section.Span)
	var issues []tt.Issue
	for _, keyword := range []string{"tier", "plan"} {
		if !strings.Contains(span, keyword) {
			issues = append(issues, tt.Issue{
				Rule:     "purpose-keywords",
				Category: "content",
				Severity: severity,
				Filename: filename,
				Message: fmt.Sprintf("section %q should mention %q",
					doc.HeadingPurpose, keyword),
				Start: tt.Position{Line: section.Heading.Line, Column: 1},
				End:   tt.Position{Line: section.Heading.Line, Column: 1},
			})
		}
	}

	hasEvolution := false
	for _, keyword := range evolutionKeywords {
		if strings.Contains(span, keyword) {
			hasEvolution = true
			break
		}
	}
	if !hasEvolution {
		issues = append(issues, tt.Issue{
			Rule:     "purpose-keywords",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message: fmt.Sprintf("section %q should indicate the feature is evolving or a first pass",
				doc.HeadingPurpose),
			Start: tt.Position{Line: section.Heading.Line, Column: 1},
			End:   tt.Position{Line: section.Heading.Line, Column: 1},
		})
	}
	return issues, nil
}

// DetectLegalEntities checks that the legal boilerplate keeps its critical
// entity terms. These are matched case-sensitively; the boilerplate is not
// supposed to be reworded.
func DetectLegalEntities(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	section, ok := document.ExtractSection(doc.HeadingLegal)
	if !ok {
		return nil, nil
	}

	var issues []tt.Issue
	for _, entity := range legalEntities {
		if strings.Contains(section.Span, entity) {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "legal-entities",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message: fmt.Sprintf("section %q should retain the term %q",
				doc.HeadingLegal, entity),
			Note:  "legal boilerplate must not be reworded",
			Start: tt.Position{Line: section.Heading.Line, Column: 1},
			End:   tt.Position{Line: section.Heading.Line, Column: 1},
		})
	}
	return issues, nil
}

// DetectTerminologyDrift checks that the related concepts "tier" and "plan"
// are both mentioned somewhere in the document.
func DetectTerminologyDrift(filename string, document *doc.Document, severity tt.Severity) ([]tt.Issue, error) {
	content := strings.ToLower(document.Content)
	var issues []tt.Issue
	for _, term := range []string{"tier", "plan"} {
		if strings.Contains(content, term) {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     "terminology",
			Category: "content",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("document should mention %q at least once", term),
		})
	}
	return issues, nil
}
