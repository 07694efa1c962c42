package schema

// Finding is a normalized security issue produced by one of the tool adapters.
type Finding struct {
	Tool        string `json:"tool"`
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Description string `json:"description"`
	CWE         string `json:"cwe"`
	Fix         string `json:"fix"`
}

// Canonical severity values. Severity is an open string: adapters emit these,
// but nothing rejects other values.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
	SeverityUnknown  = "Unknown"
)

// SeverityRank orders severities for report sorting: Critical first, Unknown
// after Low, anything else last.
func SeverityRank(s string) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityUnknown:
		return 4
	default:
		return 5
	}
}
