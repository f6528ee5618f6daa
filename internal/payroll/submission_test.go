package payroll

import (
	"strings"
	"testing"
)

const submissionCSV = "Employee Name,Role,Week 1 Worked Hours,Week 1 Overtime,Week 1 Billed Hours,Week 1 Proficiency,Week 2 Worked Hours,Week 2 Overtime,PTO,Holiday,Commission\n" +
	"Jane Doe,Technician,40,2,35,92,38,0,0,0,0\n" +
	"John Smith,Service Advisor,40,0,0,0,40,0,8,8,500\n" +
	",Technician,40,0,0,0,0,0,0,0,0\n"

func TestParseSubmission(t *testing.T) {
	rows, dropped, err := ParseSubmission(strings.NewReader(submissionCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Week1WorkedHours != 40 || rows[0].Week1Overtime != 2 || rows[0].Week1BilledHours != 35 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestBuildSubmissionReportsDefaultPolicy(t *testing.T) {
	rows := []SubmissionRow{
		{EmployeeName: "Jane Doe", Role: "Technician", Week1WorkedHours: 40, Week1Overtime: 2},
	}

	reports := BuildSubmissionReports(rows, NewRateTable(nil))
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	report := reports[0]
	if report.HourlyRate != DefaultHourlyRate {
		t.Fatalf("unconfigured employee should use the default rate, got %v", report.HourlyRate)
	}
	if report.Week1.WorkedPay != 40*30 {
		t.Fatalf("worked pay = %v", report.Week1.WorkedPay)
	}
	if report.Week1.OvertimePay != 2*45 {
		t.Fatalf("overtime pay = %v", report.Week1.OvertimePay)
	}
	if report.TotalGross != 40*30+2*45 {
		t.Fatalf("total gross = %v", report.TotalGross)
	}
}

func TestBuildSubmissionReportsHoursTakenAsIs(t *testing.T) {
	// The export pre-splits overtime; 45 worked hours stay 45, no 40-hour cap.
	rows := []SubmissionRow{
		{EmployeeName: "Jane Doe", Week1WorkedHours: 45},
	}
	reports := BuildSubmissionReports(rows, NewRateTable(nil))
	if reports[0].Week1.WorkedHours != 45 || reports[0].Week1.Overtime != 0 {
		t.Fatalf("hours must pass through unchanged: %+v", reports[0].Week1)
	}
}

func TestBuildSubmissionReportsHolidayPaidAtHourlyRate(t *testing.T) {
	rows := []SubmissionRow{
		{EmployeeName: "Jane Doe", PTO: 8, Holiday: 8},
	}
	table := NewRateTable([]RateConfig{
		{Name: "Jane Doe", Role: "Technician", PayType: PayTypeHourly, HourlyRate: 25},
	})

	report := BuildSubmissionReports(rows, table)[0]
	if report.PTOPay != 200 || report.HolidayPay != 200 {
		t.Fatalf("pto/holiday pay: %v/%v", report.PTOPay, report.HolidayPay)
	}
	if report.PTO != 8 || report.Holiday != 8 {
		t.Fatalf("hours should echo: %v/%v", report.PTO, report.Holiday)
	}
	if report.TotalGross != 400 {
		t.Fatalf("total gross = %v", report.TotalGross)
	}
}

func TestBuildSubmissionReportsIncentiveOnlyForProficiency(t *testing.T) {
	rows := []SubmissionRow{
		{EmployeeName: "Jane Doe", Week1BilledHours: 30},
		{EmployeeName: "Bob Lee", Week1BilledHours: 30},
	}
	table := NewRateTable([]RateConfig{
		{Name: "Jane Doe", Role: "Technician", PayType: PayTypeHourlyProficiency, HourlyRate: 30, IncentiveRate: 7.5},
		{Name: "Bob Lee", Role: "Technician", PayType: PayTypeHourly, HourlyRate: 30, IncentiveRate: 7.5},
	})

	reports := BuildSubmissionReports(rows, table)
	if reports[0].Week1.Incentive != 30*7.5 {
		t.Fatalf("proficiency incentive = %v", reports[0].Week1.Incentive)
	}
	if reports[1].Week1.Incentive != 0 {
		t.Fatalf("plain hourly incentive = %v", reports[1].Week1.Incentive)
	}
}

func TestBuildSubmissionReportsCommissionPassThrough(t *testing.T) {
	rows := []SubmissionRow{
		{EmployeeName: "John Smith", GrossProfit: 5000, Commission: 500},
	}
	table := NewRateTable([]RateConfig{
		{Name: "John Smith", Role: "Service Advisor", PayType: PayTypeSalaryCommission},
	})

	report := BuildSubmissionReports(rows, table)[0]
	if report.GrossProfit != 5000 || report.Commission != 500 {
		t.Fatalf("pass-through failed: %+v", report)
	}
	if report.TotalGross != 500 {
		t.Fatalf("total gross = %v", report.TotalGross)
	}
}
