package ingest

import "io"

// ClockedTimeRecord is one week of on-the-clock data for one employee.
type ClockedTimeRecord struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	ClockedTime string  `json:"clockedTime"`
	BreakTime   string  `json:"breakTime"`
	TotalHours  float64 `json:"totalHours"`
}

// ParseClockedTime reads one week's clocked-time export. Rows with no
// employee name are dropped; dropped reports how many. Record order is
// input order.
func ParseClockedTime(r io.Reader) (records []ClockedTimeRecord, dropped int, err error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, 0, err
	}

	records = make([]ClockedTimeRecord, 0, len(rows))
	for _, row := range rows {
		name := row.Field("Employee", "employee", "Employee Name", "employeeName")
		if name == "" {
			dropped++
			continue
		}
		records = append(records, ClockedTimeRecord{
			Name:        name,
			Role:        row.Field("Role", "role"),
			ClockedTime: row.Field("Clocked Time", "clockedTime"),
			BreakTime:   row.Field("Break Time", "breakTime"),
			TotalHours:  HoursFromText(row.Field("Total Time", "totalTime")),
		})
	}
	return records, dropped, nil
}
