package adapters

import (
	"testing"
)

func TestParseKICS(t *testing.T) {
	data := []byte(`{
		"queries": [{
			"query_name": "S3 Bucket ACL Public",
			"query_id": "abc-123",
			"severity": "HIGH",
			"description": "Bucket is publicly readable",
			"cwe": "CWE-732",
			"files": [
				{"file_name": "../../scan/infra/main.tf", "line": 12},
				{"file_name": "/scan/infra/other.tf", "line": 3}
			]
		}]
	}`)

	findings, err := ParseKICS(data)
	if err != nil {
		t.Fatalf("ParseKICS: %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("expected one finding per file, got %d", len(findings))
	}

	if findings[0].File != "infra/main.tf" {
		t.Errorf("File = %q, want mount prefix stripped", findings[0].File)
	}
	if findings[1].File != "infra/other.tf" {
		t.Errorf("File = %q, want mount prefix stripped", findings[1].File)
	}
	if findings[0].Line != 12 {
		t.Errorf("Line = %d, want 12", findings[0].Line)
	}
	if findings[0].CWE != "CWE-732" {
		t.Errorf("CWE = %q", findings[0].CWE)
	}
	if findings[0].Fix != "Unknown" {
		t.Errorf("Fix = %q, want \"Unknown\"", findings[0].Fix)
	}
}
