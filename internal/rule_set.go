package internal

import (
	"github.com/docverse/prlint/internal/doc"
	"github.com/docverse/prlint/internal/lints"
	tt "github.com/docverse/prlint/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given document and returns a slice of Issues.
	Check(filename string, document *doc.Document) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Severity returns the current severity of the rule.
	Severity() tt.Severity

	// SetSeverity overrides the default severity of the rule.
	SetSeverity(tt.Severity)
}

type SectionPresenceRule struct {
	severity tt.Severity
}

func NewSectionPresenceRule() LintRule {
	return &SectionPresenceRule{severity: tt.SeverityError}
}

func (r *SectionPresenceRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectMissingSections(filename, document, r.severity)
}

func (r *SectionPresenceRule) Name() string              { return "section-presence" }
func (r *SectionPresenceRule) Severity() tt.Severity     { return r.severity }
func (r *SectionPresenceRule) SetSeverity(s tt.Severity) { r.severity = s }

type SectionOrderRule struct {
	severity tt.Severity
}

func NewSectionOrderRule() LintRule {
	return &SectionOrderRule{severity: tt.SeverityError}
}

func (r *SectionOrderRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectSectionOrder(filename, document, r.severity)
}

func (r *SectionOrderRule) Name() string              { return "section-order" }
func (r *SectionOrderRule) Severity() tt.Severity     { return r.severity }
func (r *SectionOrderRule) SetSeverity(s tt.Severity) { r.severity = s }

type SectionContentRule struct {
	severity tt.Severity
}

func NewSectionContentRule() LintRule {
	return &SectionContentRule{severity: tt.SeverityError}
}

func (r *SectionContentRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectEmptySections(filename, document, r.severity)
}

func (r *SectionContentRule) Name() string              { return "section-content" }
func (r *SectionContentRule) Severity() tt.Severity     { return r.severity }
func (r *SectionContentRule) SetSeverity(s tt.Severity) { r.severity = s }

type BulletListRule struct {
	severity tt.Severity
}

func NewBulletListRule() LintRule {
	return &BulletListRule{severity: tt.SeverityError}
}

func (r *BulletListRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectMissingBullets(filename, document, r.severity)
}

func (r *BulletListRule) Name() string              { return "bullet-list" }
func (r *BulletListRule) Severity() tt.Severity     { return r.severity }
func (r *BulletListRule) SetSeverity(s tt.Severity) { r.severity = s }

type ChangeKeywordsRule struct {
	severity tt.Severity
}

func NewChangeKeywordsRule() LintRule {
	return &ChangeKeywordsRule{severity: tt.SeverityError}
}

func (r *ChangeKeywordsRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectChangeKeywords(filename, document, r.severity)
}

func (r *ChangeKeywordsRule) Name() string              { return "change-keywords" }
func (r *ChangeKeywordsRule) Severity() tt.Severity     { return r.severity }
func (r *ChangeKeywordsRule) SetSeverity(s tt.Severity) { r.severity = s }

type PurposeKeywordsRule struct {
	severity tt.Severity
}

func NewPurposeKeywordsRule() LintRule {
	return &PurposeKeywordsRule{severity: tt.SeverityError}
}

func (r *PurposeKeywordsRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectPurposeKeywords(filename, document, r.severity)
}

func (r *PurposeKeywordsRule) Name() string              { return "purpose-keywords" }
func (r *PurposeKeywordsRule) Severity() tt.Severity     { return r.severity }
func (r *PurposeKeywordsRule) SetSeverity(s tt.Severity) { r.severity = s }

type LegalEntitiesRule struct {
	severity tt.Severity
}

func NewLegalEntitiesRule() LintRule {
	return &LegalEntitiesRule{severity: tt.SeverityError}
}

func (r *LegalEntitiesRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectLegalEntities(filename, document, r.severity)
}

func (r *LegalEntitiesRule) Name() string              { return "legal-entities" }
func (r *LegalEntitiesRule) Severity() tt.Severity     { return r.severity }
func (r *LegalEntitiesRule) SetSeverity(s tt.Severity) { r.severity = s }

type TerminologyRule struct {
	severity tt.Severity
}

func NewTerminologyRule() LintRule {
	return &TerminologyRule{severity: tt.SeverityWarning}
}

func (r *TerminologyRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectTerminologyDrift(filename, document, r.severity)
}

func (r *TerminologyRule) Name() string              { return "terminology" }
func (r *TerminologyRule) Severity() tt.Severity     { return r.severity }
func (r *TerminologyRule) SetSeverity(s tt.Severity) { r.severity = s }

type HeadingStyleRule struct {
	severity tt.Severity
}

func NewHeadingStyleRule() LintRule {
	return &HeadingStyleRule{severity: tt.SeverityError}
}

func (r *HeadingStyleRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectHeadingStyle(filename, document, r.severity)
}

func (r *HeadingStyleRule) Name() string              { return "heading-style" }
func (r *HeadingStyleRule) Severity() tt.Severity     { return r.severity }
func (r *HeadingStyleRule) SetSeverity(s tt.Severity) { r.severity = s }

type HTMLCommentsRule struct {
	severity tt.Severity
}

func NewHTMLCommentsRule() LintRule {
	return &HTMLCommentsRule{severity: tt.SeverityError}
}

func (r *HTMLCommentsRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectUnbalancedComments(filename, document, r.severity)
}

func (r *HTMLCommentsRule) Name() string              { return "html-comments" }
func (r *HTMLCommentsRule) Severity() tt.Severity     { return r.severity }
func (r *HTMLCommentsRule) SetSeverity(s tt.Severity) { r.severity = s }

type LinkSyntaxRule struct {
	severity tt.Severity
}

func NewLinkSyntaxRule() LintRule {
	return &LinkSyntaxRule{severity: tt.SeverityError}
}

func (r *LinkSyntaxRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectBrokenLinks(filename, document, r.severity)
}

func (r *LinkSyntaxRule) Name() string              { return "link-syntax" }
func (r *LinkSyntaxRule) Severity() tt.Severity     { return r.severity }
func (r *LinkSyntaxRule) SetSeverity(s tt.Severity) { r.severity = s }

type EmphasisBalanceRule struct {
	severity tt.Severity
}

func NewEmphasisBalanceRule() LintRule {
	return &EmphasisBalanceRule{severity: tt.SeverityWarning}
}

func (r *EmphasisBalanceRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectUnbalancedEmphasis(filename, document, r.severity)
}

func (r *EmphasisBalanceRule) Name() string              { return "emphasis-balance" }
func (r *EmphasisBalanceRule) Severity() tt.Severity     { return r.severity }
func (r *EmphasisBalanceRule) SetSeverity(s tt.Severity) { r.severity = s }

type BlankLinesRule struct {
	severity tt.Severity
}

func NewBlankLinesRule() LintRule {
	return &BlankLinesRule{severity: tt.SeverityWarning}
}

func (r *BlankLinesRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectExcessBlankLines(filename, document, r.severity)
}

func (r *BlankLinesRule) Name() string              { return "blank-lines" }
func (r *BlankLinesRule) Severity() tt.Severity     { return r.severity }
func (r *BlankLinesRule) SetSeverity(s tt.Severity) { r.severity = s }

type LineLengthRule struct {
	severity tt.Severity
}

func NewLineLengthRule() LintRule {
	return &LineLengthRule{severity: tt.SeverityWarning}
}

func (r *LineLengthRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectLongLines(filename, document, r.severity)
}

func (r *LineLengthRule) Name() string              { return "line-length" }
func (r *LineLengthRule) Severity() tt.Severity     { return r.severity }
func (r *LineLengthRule) SetSeverity(s tt.Severity) { r.severity = s }

type EncodingRule struct {
	severity tt.Severity
}

func NewEncodingRule() LintRule {
	return &EncodingRule{severity: tt.SeverityError}
}

func (r *EncodingRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectEncodingViolations(filename, document, r.severity)
}

func (r *EncodingRule) Name() string              { return "encoding" }
func (r *EncodingRule) Severity() tt.Severity     { return r.severity }
func (r *EncodingRule) SetSeverity(s tt.Severity) { r.severity = s }

type LineEndingsRule struct {
	severity tt.Severity
}

func NewLineEndingsRule() LintRule {
	return &LineEndingsRule{severity: tt.SeverityError}
}

func (r *LineEndingsRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectMixedLineEndings(filename, document, r.severity)
}

func (r *LineEndingsRule) Name() string              { return "line-endings" }
func (r *LineEndingsRule) Severity() tt.Severity     { return r.severity }
func (r *LineEndingsRule) SetSeverity(s tt.Severity) { r.severity = s }

type TrailingWhitespaceRule struct {
	severity tt.Severity
}

func NewTrailingWhitespaceRule() LintRule {
	return &TrailingWhitespaceRule{severity: tt.SeverityInfo}
}

func (r *TrailingWhitespaceRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectTrailingWhitespace(filename, document, r.severity)
}

func (r *TrailingWhitespaceRule) Name() string              { return "trailing-whitespace" }
func (r *TrailingWhitespaceRule) Severity() tt.Severity     { return r.severity }
func (r *TrailingWhitespaceRule) SetSeverity(s tt.Severity) { r.severity = s }

type FinalNewlineRule struct {
	severity tt.Severity
}

func NewFinalNewlineRule() LintRule {
	return &FinalNewlineRule{severity: tt.SeverityError}
}

func (r *FinalNewlineRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectMissingFinalNewline(filename, document, r.severity)
}

func (r *FinalNewlineRule) Name() string              { return "final-newline" }
func (r *FinalNewlineRule) Severity() tt.Severity     { return r.severity }
func (r *FinalNewlineRule) SetSeverity(s tt.Severity) { r.severity = s }

type PlaceholderTextRule struct {
	severity tt.Severity
}

func NewPlaceholderTextRule() LintRule {
	return &PlaceholderTextRule{severity: tt.SeverityWarning}
}

func (r *PlaceholderTextRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectPlaceholders(filename, document, r.severity)
}

func (r *PlaceholderTextRule) Name() string              { return "placeholder-text" }
func (r *PlaceholderTextRule) Severity() tt.Severity     { return r.severity }
func (r *PlaceholderTextRule) SetSeverity(s tt.Severity) { r.severity = s }

type SensitiveInfoRule struct {
	severity tt.Severity
}

func NewSensitiveInfoRule() LintRule {
	return &SensitiveInfoRule{severity: tt.SeverityError}
}

func (r *SensitiveInfoRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectSensitiveInfo(filename, document, r.severity)
}

func (r *SensitiveInfoRule) Name() string              { return "sensitive-info" }
func (r *SensitiveInfoRule) Severity() tt.Severity     { return r.severity }
func (r *SensitiveInfoRule) SetSeverity(s tt.Severity) { r.severity = s }

type AbsolutePathsRule struct {
	severity tt.Severity
}

func NewAbsolutePathsRule() LintRule {
	return &AbsolutePathsRule{severity: tt.SeverityWarning}
}

func (r *AbsolutePathsRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectAbsolutePaths(filename, document, r.severity)
}

func (r *AbsolutePathsRule) Name() string              { return "absolute-paths" }
func (r *AbsolutePathsRule) Severity() tt.Severity     { return r.severity }
func (r *AbsolutePathsRule) SetSeverity(s tt.Severity) { r.severity = s }

type BulletGrammarRule struct {
	severity tt.Severity
}

func NewBulletGrammarRule() LintRule {
	return &BulletGrammarRule{severity: tt.SeverityWarning}
}

func (r *BulletGrammarRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectBulletGrammar(filename, document, r.severity)
}

func (r *BulletGrammarRule) Name() string              { return "bullet-grammar" }
func (r *BulletGrammarRule) Severity() tt.Severity     { return r.severity }
func (r *BulletGrammarRule) SetSeverity(s tt.Severity) { r.severity = s }

type FileSizeRule struct {
	severity tt.Severity
}

func NewFileSizeRule() LintRule {
	return &FileSizeRule{severity: tt.SeverityWarning}
}

func (r *FileSizeRule) Check(filename string, document *doc.Document) ([]tt.Issue, error) {
	return lints.DetectFileSizeBounds(filename, document, r.severity)
}

func (r *FileSizeRule) Name() string              { return "file-size" }
func (r *FileSizeRule) Severity() tt.Severity     { return r.severity }
func (r *FileSizeRule) SetSeverity(s tt.Severity) { r.severity = s }
