package report

import "github.com/pcbstore/ops-console/internal/models"

// Aggregate reduces any number of hourly reports into one combined counter
// set: fixed categories sum elementwise, custom fields sum by name with
// first-seen name order. An empty input yields a valid all-zero result.
// The operation is commutative and associative, so partial aggregates can be
// combined by aggregating again.
func Aggregate(reports []models.Report) models.ReportData {
	var agg models.ReportData

	totals := make(map[string]int)
	var names []string

	for i := range reports {
		data := &reports[i].Data
		for _, def := range models.Categories {
			def.Counts(&agg).Add(*def.Counts(data))
		}
		for _, cf := range data.CustomFields {
			if _, seen := totals[cf.Name]; !seen {
				names = append(names, cf.Name)
			}
			totals[cf.Name] += cf.Value
		}
	}

	for _, name := range names {
		agg.CustomFields = append(agg.CustomFields, models.CustomField{Name: name, Value: totals[name]})
	}
	return agg
}
