package adapters

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/lanternsec/secsweep/internal/schema"
)

type semgrepJSON struct {
	Results []struct {
		CheckID string `json:"check_id"`
		Path    string `json:"path"`
		Start   struct {
			Line int `json:"line"`
		} `json:"start"`
		Extra struct {
			Message  string `json:"message"`
			Severity string `json:"severity"` // INFO|WARNING|ERROR
			Fix      string `json:"fix"`
			Metadata struct {
				Cwe interface{} `json:"cwe"` // string | []string | null
			} `json:"metadata"`
		} `json:"extra"`
	} `json:"results"`
}

// ParseSemgrep maps semgrep scan results to findings. Semgrep's
// INFO/WARNING/ERROR levels translate to Low/Medium/High.
func ParseSemgrep(data []byte) ([]schema.Finding, error) {
	var doc semgrepJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make([]schema.Finding, 0, len(doc.Results))
	for _, r := range doc.Results {
		out = append(out, schema.Finding{
			Tool:        "semgrep",
			Severity:    semgrepSeverity(r.Extra.Severity),
			Type:        orUnknown(r.CheckID),
			File:        filepath.ToSlash(r.Path),
			Line:        safeLine(r.Start.Line),
			Description: orUnknown(r.Extra.Message),
			CWE:         firstCwe(r.Extra.Metadata.Cwe),
			Fix:         orUnknown(r.Extra.Fix),
		})
	}
	return out, nil
}

func semgrepSeverity(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return schema.SeverityHigh
	case "WARNING":
		return schema.SeverityMedium
	case "INFO":
		return schema.SeverityLow
	default:
		return schema.SeverityUnknown
	}
}

// firstCwe extracts one CWE from semgrep metadata, which may be a string,
// a list, or absent.
func firstCwe(v interface{}) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case []interface{}:
		for _, e := range t {
			if s, ok := e.(string); ok && s != "" {
				return s
			}
		}
	}
	return "Unknown"
}
