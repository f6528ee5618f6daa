package payroll

import (
	"bytes"
	"testing"
)

func TestReportFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane_Doe_Performance_Report.pdf"},
		{"  Jane   Doe  ", "Jane_Doe_Performance_Report.pdf"},
		{"Cher", "Cher_Performance_Report.pdf"},
	}
	for _, tc := range cases {
		if got := ReportFileName(tc.in); got != tc.want {
			t.Fatalf("ReportFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteReportPDFProducesOutput(t *testing.T) {
	report := EmployeeReport{
		Name:       "Jane Doe",
		Role:       "Technician",
		PayType:    PayTypeHourlyProficiency,
		HourlyRate: 30,
		Week1:      WeeklyBreakdown{WorkedHours: 40, WorkedPay: 1200},
		TotalGross: 1200,
	}

	var buf bytes.Buffer
	if err := WriteReportPDF(report, "Main Street Auto", &buf); err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}
