package payroll

import (
	"strings"

	"shoppay/internal/ingest"
)

// joinKey folds case and trims whitespace so that "Jane Doe" and "jane doe "
// land on the same employee. The display name keeps its original spelling.
func joinKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// JoinWeeks merges the two weekly clocked-time tables with their billed-hours
// counterparts into one entry per distinct employee. Clocked time is the
// primary source: a name that only appears in billed data is ignored. An
// employee missing from one week gets a zeroed week, never an error. When
// several billed rows share a name the first match wins.
func JoinWeeks(week1Clocked, week2Clocked []ingest.ClockedTimeRecord, week1Billed, week2Billed []ingest.BilledHoursRecord) []EmployeeHours {
	billed1 := indexBilled(week1Billed)
	billed2 := indexBilled(week2Billed)

	var joined []EmployeeHours
	index := make(map[string]int)

	add := func(rec ingest.ClockedTimeRecord, week int) {
		key := joinKey(rec.Name)
		i, seen := index[key]
		if !seen {
			i = len(joined)
			index[key] = i
			joined = append(joined, EmployeeHours{Name: strings.TrimSpace(rec.Name), Role: rec.Role})
		}
		entry := &joined[i]
		if entry.Role == "" {
			entry.Role = rec.Role
		}
		if week == 1 {
			entry.Week1.TotalHours = rec.TotalHours
		} else {
			entry.Week2.TotalHours = rec.TotalHours
		}
	}

	for _, rec := range week1Clocked {
		add(rec, 1)
	}
	for _, rec := range week2Clocked {
		add(rec, 2)
	}

	for i := range joined {
		key := joinKey(joined[i].Name)
		if b, ok := billed1[key]; ok {
			joined[i].Week1.BilledHours = b.BilledHours
			joined[i].Week1.Efficiency = b.Efficiency
			joined[i].Week1.LaborSales = b.LaborSales
			joined[i].Week1.HasBilled = true
		}
		if b, ok := billed2[key]; ok {
			joined[i].Week2.BilledHours = b.BilledHours
			joined[i].Week2.Efficiency = b.Efficiency
			joined[i].Week2.LaborSales = b.LaborSales
			joined[i].Week2.HasBilled = true
		}
	}

	return joined
}

func indexBilled(records []ingest.BilledHoursRecord) map[string]ingest.BilledHoursRecord {
	indexed := make(map[string]ingest.BilledHoursRecord, len(records))
	for _, rec := range records {
		key := joinKey(rec.Technician)
		if key == "" {
			continue
		}
		if _, exists := indexed[key]; exists {
			continue
		}
		indexed[key] = rec
	}
	return indexed
}
