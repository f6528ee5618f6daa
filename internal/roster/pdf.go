package roster

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteRosterPDF renders a staff roster overview with per-employee
// attendance and performance bands.
func WriteRosterPDF(shopName string, sum Summary, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Staff Roster Report", "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(63, 7, fmt.Sprintf("Employees: %d", sum.EmployeeCount), "", 0, "L", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Total Salary: $%.2f", sum.TotalSalary), "", 0, "L", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Avg Attendance: %.1f%%", sum.AvgAttendance), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Courier", "B", 9)
	writeRosterRow(pdf, "NAME", "DEPARTMENT", "DESIGNATION", "SALARY", "ATTENDANCE", "PERFORMANCE")
	pdf.SetFont("Courier", "", 9)

	for _, emp := range sum.Employees {
		writeRosterRow(pdf,
			emp.Name,
			emp.Department,
			emp.Designation,
			fmt.Sprintf("$%.2f", emp.Salary),
			fmt.Sprintf("%.1f%% %s", emp.Attendance, AttendanceBand(emp.Attendance)),
			fmt.Sprintf("%.1f %s", emp.Performance, PerformanceBand(emp.Performance)),
		)
	}

	return pdf.Output(w)
}

func writeRosterRow(pdf *gofpdf.Fpdf, name, dept, title, salary, attendance, performance string) {
	pdf.CellFormat(40, 6, name, "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, dept, "", 0, "L", false, 0, "")
	pdf.CellFormat(32, 6, title, "", 0, "L", false, 0, "")
	pdf.CellFormat(26, 6, salary, "", 0, "R", false, 0, "")
	pdf.CellFormat(32, 6, attendance, "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, performance, "", 1, "L", false, 0, "")
}
