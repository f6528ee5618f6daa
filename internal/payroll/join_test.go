package payroll

import (
	"testing"

	"shoppay/internal/ingest"
)

func TestJoinWeeksMergesClockedAndBilled(t *testing.T) {
	week1Clocked := []ingest.ClockedTimeRecord{
		{Name: "Jane Doe", Role: "Technician", TotalHours: 42},
		{Name: "John Smith", Role: "Service Advisor", TotalHours: 40},
	}
	week2Clocked := []ingest.ClockedTimeRecord{
		{Name: "jane doe ", TotalHours: 38},
	}
	week1Billed := []ingest.BilledHoursRecord{
		{Technician: "JANE DOE", BilledHours: 35, Efficiency: 92, LaborSales: 4200},
	}

	joined := JoinWeeks(week1Clocked, week2Clocked, week1Billed, nil)
	if len(joined) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(joined))
	}

	jane := joined[0]
	if jane.Name != "Jane Doe" || jane.Role != "Technician" {
		t.Fatalf("unexpected identity: %+v", jane)
	}
	if jane.Week1.TotalHours != 42 || jane.Week2.TotalHours != 38 {
		t.Fatalf("unexpected hours: %+v", jane)
	}
	if !jane.Week1.HasBilled || jane.Week1.BilledHours != 35 || jane.Week1.Efficiency != 92 || jane.Week1.LaborSales != 4200 {
		t.Fatalf("billed data not joined: %+v", jane.Week1)
	}
	if jane.Week2.HasBilled {
		t.Fatalf("week 2 has no billed data: %+v", jane.Week2)
	}

	john := joined[1]
	if john.Week2.TotalHours != 0 {
		t.Fatalf("missing week should be zero, got %v", john.Week2.TotalHours)
	}
}

func TestJoinWeeksIgnoresBilledOnlyNames(t *testing.T) {
	week1Billed := []ingest.BilledHoursRecord{
		{Technician: "Ghost Tech", BilledHours: 20},
	}
	joined := JoinWeeks(nil, nil, week1Billed, nil)
	if len(joined) != 0 {
		t.Fatalf("billed-only names must not create employees: %+v", joined)
	}
}

func TestJoinWeeksRoleBackfillFromSecondWeek(t *testing.T) {
	week1 := []ingest.ClockedTimeRecord{{Name: "Jane Doe", TotalHours: 40}}
	week2 := []ingest.ClockedTimeRecord{{Name: "Jane Doe", Role: "Technician", TotalHours: 36}}

	joined := JoinWeeks(week1, week2, nil, nil)
	if len(joined) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(joined))
	}
	if joined[0].Role != "Technician" {
		t.Fatalf("role should backfill from week 2, got %q", joined[0].Role)
	}
}

func TestJoinWeeksFirstBilledMatchWins(t *testing.T) {
	week1Clocked := []ingest.ClockedTimeRecord{{Name: "Jane Doe", TotalHours: 40}}
	week1Billed := []ingest.BilledHoursRecord{
		{Technician: "Jane Doe", BilledHours: 30},
		{Technician: "Jane Doe", BilledHours: 99},
	}

	joined := JoinWeeks(week1Clocked, nil, week1Billed, nil)
	if joined[0].Week1.BilledHours != 30 {
		t.Fatalf("first billed row should win, got %v", joined[0].Week1.BilledHours)
	}
}

func TestJoinWeeksPreservesFirstSeenOrder(t *testing.T) {
	week1 := []ingest.ClockedTimeRecord{
		{Name: "Charlie", TotalHours: 30},
		{Name: "Alice", TotalHours: 32},
	}
	week2 := []ingest.ClockedTimeRecord{
		{Name: "Bob", TotalHours: 34},
		{Name: "Alice", TotalHours: 36},
	}

	joined := JoinWeeks(week1, week2, nil, nil)
	want := []string{"Charlie", "Alice", "Bob"}
	if len(joined) != len(want) {
		t.Fatalf("expected %d employees, got %d", len(want), len(joined))
	}
	for i, name := range want {
		if joined[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, joined[i].Name)
		}
	}
}
