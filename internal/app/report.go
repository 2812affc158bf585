package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// renderReport formats the pipeline result as a human-readable text report:
// the entity list, the relation table, the per-organization roster, and one
// block per anchored document with its body slice.
func renderReport(res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ENTIDADES (%d)\n", len(res.Spans))
	for _, sp := range res.Spans {
		fmt.Fprintf(&b, "  [%s] %d:%d %s\n", sp.Label, sp.Start, sp.End, sp.Text)
	}

	fmt.Fprintf(&b, "\nRELACOES (%d)\n", len(res.Relations))
	for _, r := range res.Relations {
		fmt.Fprintf(&b, "  %s -> %s -> %s\n", r.Head.Text, r.Kind, r.Tail.Text)
	}

	fmt.Fprintf(&b, "\nSUMARIO (corte em %d)\n", res.Cut)
	for _, e := range res.Roster {
		fmt.Fprintf(&b, "  %s\n", e.OrgText)
		for _, sub := range e.SubOrgs {
			fmt.Fprintf(&b, "    - %s\n", sub)
		}
		for _, doc := range e.Docs {
			fmt.Fprintf(&b, "    * %s\n", doc)
		}
	}

	fmt.Fprintf(&b, "\nCORPO (%d blocos)\n", len(res.BodyItems))
	for _, it := range res.BodyItems {
		fmt.Fprintf(&b, "\n--- [%d] %s | %s ---\n", it.OrderIndex, it.OrgText, it.DocTitle)
		fmt.Fprintln(&b, strings.TrimSpace(it.SliceText))
	}

	return b.String()
}

func writeReportFile(path string, res Result) error {
	return os.WriteFile(path, []byte(renderReport(res)), 0o644)
}

// writeJSONArtifact writes the structured result for downstream consumers.
func writeJSONArtifact(path string, res Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
