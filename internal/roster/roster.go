package roster

import (
	"io"
	"sort"
	"strings"

	"shoppay/internal/ingest"
)

// Employee is one row of an uploaded staff roster.
type Employee struct {
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	Salary      float64 `json:"salary"`
	Attendance  float64 `json:"attendance"`
	Performance float64 `json:"performance"`
}

// Summary aggregates a parsed roster for the overview endpoint.
type Summary struct {
	EmployeeCount int            `json:"employeeCount"`
	TotalSalary   float64        `json:"totalSalary"`
	AvgAttendance float64        `json:"avgAttendance"`
	Departments   map[string]int `json:"departments"`
	Employees     []Employee     `json:"employees"`
}

// Parse reads a roster CSV. Rows without a name are dropped; numeric
// fields default to zero when absent or malformed.
func Parse(r io.Reader) ([]Employee, int, error) {
	rows, err := ingest.ReadRows(r)
	if err != nil {
		return nil, 0, err
	}

	var employees []Employee
	dropped := 0
	for _, row := range rows {
		name := row.Field("Name", "name")
		if name == "" {
			dropped++
			continue
		}
		employees = append(employees, Employee{
			Name:        name,
			Department:  row.Field("Department", "department"),
			Designation: row.Field("Designation", "designation"),
			Salary:      row.Float("Salary", "salary"),
			Attendance:  ingest.ParsePercent(row.Field("Attendance (%)", "Attendance", "attendance")),
			Performance: row.Float("Performance (1-10)", "Performance", "performance"),
		})
	}
	return employees, dropped, nil
}

// Summarize builds the roster overview from parsed rows.
func Summarize(employees []Employee) Summary {
	sum := Summary{
		Departments: map[string]int{},
		Employees:   employees,
	}
	sum.EmployeeCount = len(employees)

	var attendance float64
	for _, emp := range employees {
		sum.TotalSalary += emp.Salary
		attendance += emp.Attendance
		dept := emp.Department
		if dept == "" {
			dept = "Unassigned"
		}
		sum.Departments[dept]++
	}
	if len(employees) > 0 {
		attendance /= float64(len(employees))
	}
	sum.AvgAttendance = attendance
	return sum
}

// AttendanceBand buckets an attendance percentage for reporting.
func AttendanceBand(pct float64) string {
	switch {
	case pct >= 90:
		return "High"
	case pct >= 75:
		return "Medium"
	default:
		return "Low"
	}
}

// PerformanceBand buckets a 1-10 performance score.
func PerformanceBand(score float64) string {
	switch {
	case score >= 8:
		return "High"
	case score >= 6:
		return "Medium"
	default:
		return "Low"
	}
}

// SortByName orders employees case-insensitively for stable report output.
func SortByName(employees []Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].Name) < strings.ToLower(employees[j].Name)
	})
}
