package doc

import (
	"os"
	"regexp"
	"strings"
)

// Required template headings, in canonical order.
const (
	HeadingPurpose = "Purpose/Motivation"
	HeadingChanges = "What does this PR do?"
	HeadingLegal   = "Legal Boilerplate"
)

// RequiredHeadings lists the headings every PR document must contain,
// in the order they must appear.
var RequiredHeadings = []string{HeadingPurpose, HeadingChanges, HeadingLegal}

var (
	// headingPattern matches an ATX heading line, tolerating an optional
	// blockquote prefix. Group 1 is the marker run, group 2 the spacing
	// between marker and title, group 3 the title.
	headingPattern = regexp.MustCompile(`^\s*(?:>\s*)?(#{1,6})([ \t]+)(.*?)\s*$`)

	bulletPattern = regexp.MustCompile(`^\s*(?:>\s*)?[-*][ \t]+\S`)
)

// Document is an immutable snapshot of a markdown file. It is loaded once
// and shared read-only across all rules.
type Document struct {
	Path    string
	Raw     []byte
	Content string
	Lines   []string

	lineOffsets []int
}

// Heading is a recognized ATX heading line.
type Heading struct {
	Title   string
	Level   int
	Line    int    // 1-based line number
	Offset  int    // byte offset of the heading line within Content
	Spacing string // whitespace between the marker run and the title
}

// Section is the text span strictly between a heading line and the next
// heading line (or end of document). The span carries no trimming; each
// rule decides how much whitespace it tolerates.
type Section struct {
	Heading   Heading
	Span      string
	StartLine int // 1-based first line of the span
	EndLine   int // 1-based last line of the span; < StartLine when empty
}

// FromBytes builds a Document from raw file content.
func FromBytes(path string, raw []byte) *Document {
	content := string(raw)
	lines := strings.Split(content, "\n")

	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}

	return &Document{
		Path:        path,
		Raw:         raw,
		Content:     content,
		Lines:       lines,
		lineOffsets: offsets,
	}
}

// ReadDocument loads the file at path. A missing or unreadable file is a
// precondition failure: no rules run for it.
func ReadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(path, raw), nil
}

// LineOffset returns the byte offset of the start of the given 1-based line.
func (d *Document) LineOffset(line int) int {
	if line < 1 || line > len(d.lineOffsets) {
		return -1
	}
	return d.lineOffsets[line-1]
}

// Headings returns every recognized heading in document order.
func (d *Document) Headings() []Heading {
	var headings []Heading
	for i, line := range d.Lines {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Title:   m[3],
			Level:   len(m[1]),
			Line:    i + 1,
			Offset:  d.lineOffsets[i],
			Spacing: m[2],
		})
	}
	return headings
}

// Sections splits the document into sections. Text before the first heading
// belongs to no section.
func (d *Document) Sections() []Section {
	headings := d.Headings()
	sections := make([]Section, 0, len(headings))
	for i, h := range headings {
		endIdx := len(d.Lines) // exclusive, 0-based
		if i+1 < len(headings) {
			endIdx = headings[i+1].Line - 1
		}
		span := strings.Join(d.Lines[h.Line:endIdx], "\n")
		sections = append(sections, Section{
			Heading:   h,
			Span:      span,
			StartLine: h.Line + 1,
			EndLine:   endIdx,
		})
	}
	return sections
}

// ExtractSection finds the first level-3 section with the given title.
// The boolean result is false when the heading does not appear; callers
// treat that as a missing required section, not a recoverable condition.
func (d *Document) ExtractSection(title string) (Section, bool) {
	for _, s := range d.Sections() {
		if s.Heading.Level == 3 && s.Heading.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// SpanLines returns the lines of the section span paired with their 1-based
// line numbers in the document.
func (s Section) SpanLines(d *Document) []string {
	if s.EndLine < s.StartLine {
		return nil
	}
	return d.Lines[s.StartLine-1 : s.EndLine]
}

// IsBulletLine reports whether a line is a markdown bullet item, tolerating
// a blockquote prefix.
func IsBulletLine(line string) bool {
	return bulletPattern.MatchString(line)
}

// StripHTMLComments blanks out the interior of HTML comment spans while
// preserving line structure, so scans that must ignore commented-out text
// keep accurate line numbers.
func StripHTMLComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	rest := content
	for {
		open := strings.Index(rest, "<!--")
		if open == -1 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])

		end := strings.Index(rest[open:], "-->")
		var comment string
		if end == -1 {
			comment = rest[open:]
			rest = ""
		} else {
			comment = rest[open : open+end+3]
			rest = rest[open+end+3:]
		}
		for _, ch := range comment {
			if ch == '\n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		if rest == "" {
			return b.String()
		}
	}
}
