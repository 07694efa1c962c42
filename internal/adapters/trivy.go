package adapters

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lanternsec/secsweep/internal/schema"
)

type trivyJSON struct {
	Results []struct {
		Target          string `json:"Target"`
		Vulnerabilities []struct {
			VulnerabilityID  string   `json:"VulnerabilityID"`
			PkgName          string   `json:"PkgName"`
			InstalledVersion string   `json:"InstalledVersion"`
			FixedVersion     string   `json:"FixedVersion"`
			Severity         string   `json:"Severity"`
			Title            string   `json:"Title"`
			Description      string   `json:"Description"`
			CweIDs           []string `json:"CweIDs"`
		} `json:"Vulnerabilities"`
		Misconfigurations []struct {
			ID            string `json:"ID"`
			Title         string `json:"Title"`
			Description   string `json:"Description"`
			Severity      string `json:"Severity"`
			Resolution    string `json:"Resolution"`
			CauseMetadata struct {
				StartLine int `json:"StartLine"`
			} `json:"CauseMetadata"`
		} `json:"Misconfigurations"`
	} `json:"Results"`
}

// ParseTrivy handles both trivy filesystem (dependency) and image scans.
// Package vulnerabilities carry no source location, so File is synthesized as
// "package:version" and Type is fixed.
func ParseTrivy(data []byte) ([]schema.Finding, error) {
	var doc trivyJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var out []schema.Finding
	for _, r := range doc.Results {
		for _, v := range r.Vulnerabilities {
			desc := v.Title
			if desc == "" {
				desc = v.Description
			}
			cwe := "Unknown"
			if len(v.CweIDs) > 0 {
				cwe = v.CweIDs[0]
			}
			out = append(out, schema.Finding{
				Tool:        "trivy",
				Severity:    normalizeSeverity(v.Severity),
				Type:        "Vulnerable Package",
				File:        fmt.Sprintf("%s:%s", v.PkgName, v.InstalledVersion),
				Line:        0,
				Description: orUnknown(desc),
				CWE:         cwe,
				Fix:         orUnknown(v.FixedVersion),
			})
		}
		for _, m := range r.Misconfigurations {
			desc := m.Description
			if desc == "" {
				desc = m.Title
			}
			out = append(out, schema.Finding{
				Tool:        "trivy",
				Severity:    normalizeSeverity(m.Severity),
				Type:        orUnknown(m.ID),
				File:        filepath.ToSlash(r.Target),
				Line:        safeLine(m.CauseMetadata.StartLine),
				Description: orUnknown(desc),
				CWE:         "Unknown",
				Fix:         orUnknown(m.Resolution),
			})
		}
	}
	return out, nil
}
