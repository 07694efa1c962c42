package adapters

import (
	"encoding/json"

	"github.com/lanternsec/secsweep/internal/schema"
)

type nucleiJSON []struct {
	TemplateID string `json:"template-id"`
	Info       struct {
		Name           string `json:"name"`
		Severity       string `json:"severity"`
		Description    string `json:"description"`
		Remediation    string `json:"remediation"`
		Classification struct {
			CweID []string `json:"cwe-id"`
		} `json:"classification"`
	} `json:"info"`
	Host      string `json:"host"`
	MatchedAt string `json:"matched-at"`
}

// ParseNuclei maps nuclei's exported finding array. There is no file or line
// for a dynamic finding; File carries the matched URL instead.
func ParseNuclei(data []byte) ([]schema.Finding, error) {
	var doc nucleiJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make([]schema.Finding, 0, len(doc))
	for _, r := range doc {
		desc := r.Info.Description
		if desc == "" {
			desc = r.Info.Name
		}
		file := r.MatchedAt
		if file == "" {
			file = r.Host
		}
		cwe := "Unknown"
		if len(r.Info.Classification.CweID) > 0 {
			cwe = r.Info.Classification.CweID[0]
		}
		out = append(out, schema.Finding{
			Tool:        "nuclei",
			Severity:    normalizeSeverity(r.Info.Severity),
			Type:        orUnknown(r.TemplateID),
			File:        orUnknown(file),
			Line:        0,
			Description: orUnknown(desc),
			CWE:         cwe,
			Fix:         orUnknown(r.Info.Remediation),
		})
	}
	return out, nil
}
