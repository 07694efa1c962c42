package adapters

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/lanternsec/secsweep/internal/schema"
)

type kicsJSON struct {
	Queries []struct {
		QueryName   string `json:"query_name"`
		QueryID     string `json:"query_id"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		CWE         string `json:"cwe"`
		Files       []struct {
			FileName        string `json:"file_name"`
			Line            int    `json:"line"`
			Remediation     string `json:"remediation"`
			RemediationType string `json:"remediation_type"`
		} `json:"files"`
	} `json:"queries"`
}

// ParseKICS flattens KICS queries into one finding per affected file. Paths
// are cleaned of the container mount prefixes KICS reports.
func ParseKICS(data []byte) ([]schema.Finding, error) {
	var doc kicsJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var out []schema.Finding
	for _, q := range doc.Queries {
		desc := q.Description
		if desc == "" {
			desc = q.QueryName
		}
		for _, f := range q.Files {
			out = append(out, schema.Finding{
				Tool:        "kics",
				Severity:    normalizeSeverity(q.Severity),
				Type:        orUnknown(q.QueryName),
				File:        cleanKICSPath(f.FileName),
				Line:        safeLine(f.Line),
				Description: orUnknown(desc),
				CWE:         orUnknown(q.CWE),
				Fix:         orUnknown(f.Remediation),
			})
		}
	}
	return out, nil
}

// cleanKICSPath strips the /scan mount prefix KICS adds inside its container.
func cleanKICSPath(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/scan/")
	p = strings.TrimPrefix(p, "scan/")
	return orUnknown(p)
}
