package adapters

import (
	"encoding/json"
	"path/filepath"

	"github.com/lanternsec/secsweep/internal/schema"
)

type gitleaksJSON []struct {
	Description string `json:"Description"`
	File        string `json:"File"`
	StartLine   int    `json:"StartLine"`
	RuleID      string `json:"RuleID"`
}

// ParseGitleaks maps gitleaks leak records. A leaked credential is always
// Critical; CWE-798 covers hardcoded credentials.
func ParseGitleaks(data []byte) ([]schema.Finding, error) {
	// Gitleaks writes an empty report when nothing is found.
	if len(data) == 0 {
		return nil, nil
	}

	var doc gitleaksJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make([]schema.Finding, 0, len(doc))
	for _, r := range doc {
		desc := r.Description
		if desc == "" {
			desc = r.RuleID
		}
		out = append(out, schema.Finding{
			Tool:        "gitleaks",
			Severity:    schema.SeverityCritical,
			Type:        "Hardcoded Secret",
			File:        orUnknown(filepath.ToSlash(r.File)),
			Line:        safeLine(r.StartLine),
			Description: orUnknown(desc),
			CWE:         "CWE-798",
			Fix:         "Revoke the secret and remove it from history.",
		})
	}
	return out, nil
}
