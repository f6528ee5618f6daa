package ingest

import (
	"strings"
	"testing"
)

func TestReadRowsToleratesRaggedAndEmptyRows(t *testing.T) {
	csv := "Employee,Role,Total Time\n" +
		"Jane Doe,Technician,(40 hrs)\n" +
		",,\n" +
		"John Smith,Technician\n"

	rows, err := ReadRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Employee"] != "Jane Doe" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if _, ok := rows[1]["Total Time"]; ok {
		t.Fatalf("ragged row should leave trailing field absent: %+v", rows[1])
	}
}

func TestReadRowsEmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestFieldPrefersFirstNonEmptyCandidate(t *testing.T) {
	row := Row{"Employee": "", "employeeName": "  Jane Doe  "}
	if got := row.Field("Employee", "employee", "Employee Name", "employeeName"); got != "Jane Doe" {
		t.Fatalf("got %q", got)
	}
	if got := row.Field("Missing"); got != "" {
		t.Fatalf("missing field should be empty, got %q", got)
	}
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"42.5", 42.5},
		{"$1,234.56", 1234.56},
		{"  30 ", 30},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tc := range cases {
		if got := ParseFloat(tc.in); got != tc.want {
			t.Fatalf("ParseFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	if got := ParsePercent("92%"); got != 92 {
		t.Fatalf("got %v", got)
	}
	if got := ParsePercent(" 87.5 % "); got != 87.5 {
		t.Fatalf("got %v", got)
	}
	if got := ParsePercent("88"); got != 88 {
		t.Fatalf("got %v", got)
	}
}

func TestHoursFromText(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"(40 hrs)", 40},
		{"( 37.50 hrs )", 37.5},
		{"(8 hr)", 8},
		{"(45.25 HRS)", 45.25},
		{"Mon 8a - Fri 5p (42.75 hrs)", 42.75},
		{"no hours here", 0},
		{"", 0},
		{"(abc hrs)", 0},
	}
	for _, tc := range cases {
		if got := HoursFromText(tc.in); got != tc.want {
			t.Fatalf("HoursFromText(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseClockedTimeDropsNamelessRows(t *testing.T) {
	csv := "Employee,Role,Clocked Time,Break Time,Total Time\n" +
		"Jane Doe,Technician,8:00 AM - 5:00 PM,1:00,(40 hrs)\n" +
		",Technician,8:00 AM - 5:00 PM,1:00,(38 hrs)\n" +
		"John Smith,Service Advisor,9:00 AM - 6:00 PM,0:30,(42.5 hrs)\n"

	records, dropped, err := ParseClockedTime(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "Jane Doe" || records[0].TotalHours != 40 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Role != "Service Advisor" || records[1].TotalHours != 42.5 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestParseClockedTimeCamelCaseHeaders(t *testing.T) {
	csv := "employeeName,role,totalTime\n" +
		"Jane Doe,Technician,(39.5 hrs)\n"

	records, _, err := ParseClockedTime(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(records) != 1 || records[0].TotalHours != 39.5 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParseBilledHours(t *testing.T) {
	csv := "Technician,Job Totals,Billed Hours,Actual Hours,Efficiency,Labor Sales\n" +
		"Jane Doe,12,35,38,92%,\"$4,200.00\"\n" +
		",3,10,12,83%,$900.00\n" +
		"Bob Lee,7,not-a-number,20,,\n"

	records, dropped, err := ParseBilledHours(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.JobTotals != 12 || first.BilledHours != 35 || first.Efficiency != 92 || first.LaborSales != 4200 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	second := records[1]
	if second.BilledHours != 0 || second.Efficiency != 0 || second.LaborSales != 0 {
		t.Fatalf("malformed numbers should coerce to zero: %+v", second)
	}
}
