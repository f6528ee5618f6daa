package ingest

import "io"

// BilledHoursRecord is one week of billed-labor data for one technician.
type BilledHoursRecord struct {
	Technician  string  `json:"technician"`
	JobTotals   int     `json:"jobTotals"`
	BilledHours float64 `json:"billedHours"`
	ActualHours float64 `json:"actualHours"`
	Efficiency  float64 `json:"efficiency"`
	LaborSales  float64 `json:"laborSales"`
}

// ParseBilledHours reads one week's billed-labor export. Rows with no
// technician name are dropped.
func ParseBilledHours(r io.Reader) (records []BilledHoursRecord, dropped int, err error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, 0, err
	}

	records = make([]BilledHoursRecord, 0, len(rows))
	for _, row := range rows {
		name := row.Field("Technician", "technician", "Technician Name", "technicianName")
		if name == "" {
			dropped++
			continue
		}
		records = append(records, BilledHoursRecord{
			Technician:  name,
			JobTotals:   int(row.Float("Job Totals", "jobTotals")),
			BilledHours: row.Float("Billed Hours", "billedHours"),
			ActualHours: row.Float("Actual Hours", "actualHours"),
			Efficiency:  ParsePercent(row.Field("Efficiency", "efficiency")),
			LaborSales:  row.Float("Labor Sales", "laborSales"),
		})
	}
	return records, dropped, nil
}
