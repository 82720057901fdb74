package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Position points at a location inside a document. Line and Column are
// 1-based; a zero Position means the issue applies to the document as a whole.
type Position struct {
	Line   int
	Column int
}

// Issue represents a single violation found in a document.
type Issue struct {
	Rule       string
	Category   string
	Severity   Severity
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      Position
	End        Position
}

// Severity is the reporting level of a rule. SeverityOff disables the rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) MarshalYAML() (interface{}, error) {
	switch s {
	case SeverityError:
		return "error", nil
	case SeverityWarning:
		return "warning", nil
	case SeverityInfo:
		return "info", nil
	case SeverityOff:
		return "off", nil
	}
	return nil, fmt.Errorf("unknown severity: %d", s)
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity: %q", value.Value)
	}
	return nil
}

// ConfigRule holds the per-rule settings read from the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
