package roster

import (
	"bytes"
	"strings"
	"testing"
)

const rosterCSV = "Name,Department,Designation,Salary,Attendance,Performance\n" +
	"Jane Doe,Service,Technician,52000,96%,9.2\n" +
	"Bob Lee,Service,Technician,48000,88%,7.5\n" +
	"Ana Cruz,,Advisor,55000,72%,5\n" +
	",Service,Technician,40000,90%,8\n"

func TestParse(t *testing.T) {
	employees, dropped, err := Parse(strings.NewReader(rosterCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(employees) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(employees))
	}
	first := employees[0]
	if first.Name != "Jane Doe" || first.Salary != 52000 || first.Attendance != 96 || first.Performance != 9.2 {
		t.Fatalf("unexpected first employee: %+v", first)
	}
}

func TestSummarize(t *testing.T) {
	employees, _, err := Parse(strings.NewReader(rosterCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	sum := Summarize(employees)
	if sum.EmployeeCount != 3 {
		t.Fatalf("count = %d", sum.EmployeeCount)
	}
	if sum.TotalSalary != 155000 {
		t.Fatalf("total salary = %v", sum.TotalSalary)
	}
	if sum.AvgAttendance < 85.3 || sum.AvgAttendance > 85.4 {
		t.Fatalf("avg attendance = %v", sum.AvgAttendance)
	}
	if sum.Departments["Service"] != 2 || sum.Departments["Unassigned"] != 1 {
		t.Fatalf("departments = %+v", sum.Departments)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.EmployeeCount != 0 || sum.AvgAttendance != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestAttendanceBand(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "High"},
		{90, "High"},
		{89.9, "Medium"},
		{75, "Medium"},
		{74.9, "Low"},
		{0, "Low"},
	}
	for _, tc := range cases {
		if got := AttendanceBand(tc.pct); got != tc.want {
			t.Fatalf("AttendanceBand(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestPerformanceBand(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{10, "High"},
		{8, "High"},
		{7.9, "Medium"},
		{6, "Medium"},
		{5.9, "Low"},
	}
	for _, tc := range cases {
		if got := PerformanceBand(tc.score); got != tc.want {
			t.Fatalf("PerformanceBand(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSortByName(t *testing.T) {
	employees := []Employee{{Name: "bob"}, {Name: "Ana"}, {Name: "Cruz"}}
	SortByName(employees)
	if employees[0].Name != "Ana" || employees[1].Name != "bob" || employees[2].Name != "Cruz" {
		t.Fatalf("unexpected order: %+v", employees)
	}
}

func TestWriteRosterPDFProducesOutput(t *testing.T) {
	employees, _, err := Parse(strings.NewReader(rosterCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteRosterPDF("Main Street Auto", Summarize(employees), &buf); err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}
