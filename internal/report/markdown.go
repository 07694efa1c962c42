package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lanternsec/secsweep/internal/schema"
	"github.com/lanternsec/secsweep/internal/stats"
)

// Markdown renders a summary plus a findings table ordered by severity into
// a timestamped .md file and returns its path.
func (g *Generator) Markdown(findings []schema.Finding, st stats.Stats) (string, error) {
	var b strings.Builder

	b.WriteString("# Security Scan Report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().Format(time.RFC1123))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total findings: **%d**\n", st.Total)
	for _, sev := range severityOrder {
		if n := st.BySeverity[sev]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", sev, n)
		}
	}
	b.WriteString("\n### By tool\n\n")
	for tool, n := range st.ByTool {
		fmt.Fprintf(&b, "- %s: %d\n", tool, n)
	}

	b.WriteString("\n## Findings\n\n")
	if len(findings) == 0 {
		b.WriteString("No findings.\n")
	} else {
		b.WriteString("| Severity | Tool | Type | File | Line | Description | CWE | Fix |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|\n")
		for _, f := range sortBySeverity(findings) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | %s | %s |\n",
				mdCell(f.Severity), mdCell(f.Tool), mdCell(f.Type), mdCell(f.File), f.Line,
				mdCell(f.Description), mdCell(f.CWE), mdCell(f.Fix))
		}
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("security_report_%s.md", reportStamp()))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// mdCell keeps free-form tool text from breaking the table layout.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}
