package payroll

import (
	"io"

	"shoppay/internal/ingest"
)

// SubmissionRow is one line of the pre-aggregated payroll CSV used by the
// single-file submission mode: hours are already split into worked and
// overtime columns per week.
type SubmissionRow struct {
	EmployeeName     string  `json:"employeeName"`
	Department       string  `json:"department"`
	Designation      string  `json:"designation"`
	Role             string  `json:"role"`
	Week1WorkedHours float64 `json:"week1WorkedHours"`
	Week1Overtime    float64 `json:"week1Overtime"`
	Week1BilledHours float64 `json:"week1BilledHours"`
	Week1Proficiency float64 `json:"week1Proficiency"`
	Week2WorkedHours float64 `json:"week2WorkedHours"`
	Week2Overtime    float64 `json:"week2Overtime"`
	Week2BilledHours float64 `json:"week2BilledHours"`
	Week2Proficiency float64 `json:"week2Proficiency"`
	PTO              float64 `json:"pto"`
	Holiday          float64 `json:"holiday"`
	Salary           float64 `json:"salary"`
	GrossProfit      float64 `json:"grossProfit"`
	Commission       float64 `json:"commission"`
}

// ParseSubmission reads the single-file payroll export. Rows without an
// employee name are dropped.
func ParseSubmission(r io.Reader) (rows []SubmissionRow, dropped int, err error) {
	raw, err := ingest.ReadRows(r)
	if err != nil {
		return nil, 0, err
	}

	rows = make([]SubmissionRow, 0, len(raw))
	for _, row := range raw {
		name := row.Field("Employee Name", "employeeName", "Employee", "employee")
		if name == "" {
			dropped++
			continue
		}
		rows = append(rows, SubmissionRow{
			EmployeeName:     name,
			Department:       row.Field("Department", "department"),
			Designation:      row.Field("Designation", "designation"),
			Role:             row.Field("Role", "role"),
			Week1WorkedHours: row.Float("Week 1 Worked Hours", "week1WorkedHours"),
			Week1Overtime:    row.Float("Week 1 Overtime", "week1Overtime"),
			Week1BilledHours: row.Float("Week 1 Billed Hours", "week1BilledHours"),
			Week1Proficiency: row.Float("Week 1 Proficiency", "week1Proficiency"),
			Week2WorkedHours: row.Float("Week 2 Worked Hours", "week2WorkedHours"),
			Week2Overtime:    row.Float("Week 2 Overtime", "week2Overtime"),
			Week2BilledHours: row.Float("Week 2 Billed Hours", "week2BilledHours"),
			Week2Proficiency: row.Float("Week 2 Proficiency", "week2Proficiency"),
			PTO:              row.Float("PTO", "pto"),
			Holiday:          row.Float("Holiday", "holiday"),
			Salary:           row.Float("Salary", "salary"),
			GrossProfit:      row.Float("Gross Profit", "grossProfit"),
			Commission:       row.Float("Commission", "commission"),
		})
	}
	return rows, dropped, nil
}

// BuildSubmissionReports applies the submission-mode policy: employees
// without a rate entry get the fixed hourly default instead of being
// skipped, and holiday hours are paid at the hourly rate. Worked hours are
// taken as-is since the export pre-splits overtime.
func BuildSubmissionReports(rows []SubmissionRow, rates RateTable) []EmployeeReport {
	reports := make([]EmployeeReport, 0, len(rows))
	for _, row := range rows {
		resolved, ok := rates.Resolve(row.EmployeeName)
		if !ok {
			resolved = DefaultRates(row.EmployeeName, row.Role)
		}

		week1 := WeeklyBreakdown{
			WorkedHours: row.Week1WorkedHours,
			Overtime:    row.Week1Overtime,
			BilledHours: row.Week1BilledHours,
			Proficiency: row.Week1Proficiency,
			WorkedPay:   row.Week1WorkedHours * resolved.HourlyRate,
			OvertimePay: row.Week1Overtime * resolved.OvertimeRate,
		}
		week2 := WeeklyBreakdown{
			WorkedHours: row.Week2WorkedHours,
			Overtime:    row.Week2Overtime,
			BilledHours: row.Week2BilledHours,
			Proficiency: row.Week2Proficiency,
			WorkedPay:   row.Week2WorkedHours * resolved.HourlyRate,
			OvertimePay: row.Week2Overtime * resolved.OvertimeRate,
		}
		if resolved.PayType == PayTypeHourlyProficiency {
			week1.Incentive = row.Week1BilledHours * resolved.IncentiveRate
		}

		ptoPay := row.PTO * resolved.HourlyRate
		holidayPay := row.Holiday * resolved.HourlyRate
		total := week1.WorkedPay + week1.OvertimePay + week2.WorkedPay + week2.OvertimePay +
			ptoPay + holidayPay + week1.Incentive + row.Commission

		resolved.PTOHours = row.PTO
		resolved.HolidayHours = row.Holiday

		reports = append(reports, assemble(
			EmployeeHours{
				Name: row.EmployeeName,
				Role: resolved.Role,
				Week1: WeekData{
					TotalHours:  row.Week1WorkedHours + row.Week1Overtime,
					BilledHours: row.Week1BilledHours,
					Efficiency:  row.Week1Proficiency,
				},
				Week2: WeekData{
					TotalHours:  row.Week2WorkedHours + row.Week2Overtime,
					BilledHours: row.Week2BilledHours,
					Efficiency:  row.Week2Proficiency,
				},
			},
			resolved,
			reportTotals{
				week1:       week1,
				week2:       week2,
				ptoPay:      ptoPay,
				holidayPay:  holidayPay,
				grossProfit: row.GrossProfit,
				commission:  row.Commission,
				totalGross:  total,
			},
		))
	}
	return reports
}
