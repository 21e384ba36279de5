package report

import (
	"fmt"
	"strings"

	"github.com/pcbstore/ops-console/internal/models"
)

// Kind selects the summary header.
type Kind string

const (
	KindHourly Kind = "hourly"
	KindDaily  Kind = "daily"
)

// Format renders a counter set as plain text ready to paste into WhatsApp.
// Every category with at least one non-zero kind gets a dash line, kinds in
// the category's canonical order; all-zero categories never appear. Custom
// fields with value > 0 come last. Category lines are joined with ",\n" —
// the historical share format; changing the join breaks paste compatibility
// with existing output.
func Format(data models.ReportData, kind Kind, dateLabel string) string {
	var b strings.Builder
	if kind == KindDaily {
		b.WriteString("Today's work done")
	} else {
		b.WriteString("Hourly Update")
	}
	if dateLabel != "" {
		b.WriteString(" (" + dateLabel + ")")
	}
	b.WriteString(":\n\n")
	b.WriteString("Products\n")

	var lines []string
	for _, def := range models.Categories {
		counts := def.Counts(&data)
		var actions []string
		for _, k := range def.Kinds {
			if v := counts.Get(k); v > 0 {
				actions = append(actions, fmt.Sprintf("%s %d", k, v))
			}
		}
		if len(actions) > 0 {
			lines = append(lines, fmt.Sprintf("- %s %s", def.Label, strings.Join(actions, ", ")))
		}
	}
	for _, cf := range data.CustomFields {
		if cf.Value > 0 {
			lines = append(lines, fmt.Sprintf("- %s %d", cf.Name, cf.Value))
		}
	}

	b.WriteString(strings.Join(lines, ",\n"))
	return b.String()
}
