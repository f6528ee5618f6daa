package payroll

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// ReportFileName names the downloadable PDF for an employee report.
func ReportFileName(name string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(name), "_") + "_Performance_Report.pdf"
}

// WriteReportPDF renders a finished report record. It does no computation
// of its own: every number comes straight off the report fields.
func WriteReportPDF(report EmployeeReport, shopName string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Employee Performance Report", "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(95, 7, "Name: "+report.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Role: "+report.Role, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Courier", "B", 10)
	writeRow(pdf, "DESCRIPTION", "HOURS", "RATE", "TOTAL")
	pdf.SetFont("Courier", "", 10)

	switch ResolveTemplate(report.Role, report.PayType) {
	case TemplateProficiency:
		writeHourlyWeek(pdf, "WEEK 1", report.Week1, report)
		writeProficiencyRows(pdf, "WEEK 1", report.Week1)
		writeHourlyWeek(pdf, "WEEK 2", report.Week2, report)
		writeProficiencyRows(pdf, "WEEK 2", report.Week2)
		writePTOHoliday(pdf, report)
		writeRow(pdf, "INCENTIVE WEEK 1", hours(report.Week1.BilledHours), money(report.IncentiveRate), money(report.Week1.Incentive))
		writeRow(pdf, "INCENTIVE WEEK 2", hours(report.Week2.BilledHours), money(report.IncentiveRate), money(report.Week2.Incentive))

	case TemplateSalaryCommission:
		writeRow(pdf, "SALARY", "-", "-", money(report.SalaryPay))
		writeRow(pdf, "GROSS PROFIT", money(report.GrossProfit), fmt.Sprintf("%.0f%%", report.CommissionRate), money(report.Commission))
		writeRow(pdf, "PTO", hours(report.PTO), "-", money(0))
		writeRow(pdf, "HOLIDAY", hours(report.Holiday), "-", money(0))

	case TemplatePartTime:
		writeRow(pdf, "WEEK 1 WORKED HOURS", hours(report.Week1.WorkedHours), money(report.HourlyRate), money(report.Week1.WorkedPay))
		writeRow(pdf, "WEEK 2 WORKED HOURS", hours(report.Week2.WorkedHours), money(report.HourlyRate), money(report.Week2.WorkedPay))

	default:
		writeHourlyWeek(pdf, "WEEK 1", report.Week1, report)
		writeHourlyWeek(pdf, "WEEK 2", report.Week2, report)
		writePTOHoliday(pdf, report)
	}

	pdf.Ln(2)
	pdf.SetFont("Courier", "B", 10)
	writeRow(pdf, "TOTAL GROSS WAGES", "-", "-", money(report.TotalGross))

	return pdf.Output(w)
}

func writeHourlyWeek(pdf *gofpdf.Fpdf, label string, week WeeklyBreakdown, report EmployeeReport) {
	writeRow(pdf, label+" WORKED HOURS", hours(week.WorkedHours), money(report.HourlyRate), money(week.WorkedPay))
	writeRow(pdf, label+" OVERTIME", hours(week.Overtime), money(report.OvertimeRate), money(week.OvertimePay))
}

func writeProficiencyRows(pdf *gofpdf.Fpdf, label string, week WeeklyBreakdown) {
	writeRow(pdf, label+" BILLED HOURS", hours(week.BilledHours), "-", "-")
	writeRow(pdf, label+" PROFICIENCY", fmt.Sprintf("%.2f%%", week.Proficiency), "-", "-")
}

func writePTOHoliday(pdf *gofpdf.Fpdf, report EmployeeReport) {
	writeRow(pdf, "PTO", hours(report.PTO), money(report.HourlyRate), money(report.PTOPay))
	writeRow(pdf, "HOLIDAY", hours(report.Holiday), money(safeDiv(report.HolidayPay, report.Holiday)), money(report.HolidayPay))
}

func writeRow(pdf *gofpdf.Fpdf, description, hoursCol, rateCol, totalCol string) {
	pdf.CellFormat(80, 6, description, "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, hoursCol, "", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, rateCol, "", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, totalCol, "", 1, "C", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func hours(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
