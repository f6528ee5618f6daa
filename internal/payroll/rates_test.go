package payroll

import "testing"

func TestResolveTemplate(t *testing.T) {
	cases := []struct {
		role    string
		payType string
		want    Template
	}{
		{"Technician", "Hourly", TemplateHourly},
		{"Technician", "Hourly + Proficiency", TemplateProficiency},
		{"Technician", "Flat Rate", TemplateProficiency},
		{"Technician", "Salary", TemplateSalaryCommission},
		{"Lead Technician", "hourly + proficiency", TemplateProficiency},
		{"Technician", "", TemplateHourly},
		{"Service Advisor", "Salary + Commission", TemplateSalaryCommission},
		{"Manager", "", TemplateSalaryCommission},
		{"Admin", "Hourly", TemplateSalaryCommission},
		{"Part Time Hourly", "", TemplatePartTime},
		{"", "", TemplateHourly},
		{"Porter", "Hourly", TemplateHourly},
	}
	for _, tc := range cases {
		if got := ResolveTemplate(tc.role, tc.payType); got != tc.want {
			t.Fatalf("ResolveTemplate(%q, %q) = %v, want %v", tc.role, tc.payType, got, tc.want)
		}
	}
}

func TestRateTableResolveIsGated(t *testing.T) {
	table := NewRateTable([]RateConfig{
		{Name: "Jane Doe", Role: "Technician", PayType: PayTypeHourlyProficiency, HourlyRate: 30},
	})

	resolved, ok := table.Resolve("  JANE DOE ")
	if !ok {
		t.Fatal("expected case-folded lookup to succeed")
	}
	if resolved.Template != TemplateProficiency {
		t.Fatalf("unexpected template: %v", resolved.Template)
	}
	if resolved.OvertimeRate != 45 {
		t.Fatalf("overtime should default to 1.5x, got %v", resolved.OvertimeRate)
	}

	if _, ok := table.Resolve("Unknown Person"); ok {
		t.Fatal("unconfigured employee must not resolve")
	}
}

func TestRateTableKeepsExplicitOvertimeRate(t *testing.T) {
	table := NewRateTable([]RateConfig{
		{Name: "Jane Doe", HourlyRate: 30, OvertimeRate: 50},
	})
	resolved, _ := table.Resolve("Jane Doe")
	if resolved.OvertimeRate != 50 {
		t.Fatalf("explicit overtime rate must survive, got %v", resolved.OvertimeRate)
	}
}

func TestNewRateTableFirstEntryWins(t *testing.T) {
	table := NewRateTable([]RateConfig{
		{Name: "Jane Doe", HourlyRate: 30},
		{Name: "jane doe", HourlyRate: 99},
		{Name: "   ", HourlyRate: 12},
	})
	if len(table) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(table))
	}
	resolved, _ := table.Resolve("Jane Doe")
	if resolved.HourlyRate != 30 {
		t.Fatalf("first entry should win, got %v", resolved.HourlyRate)
	}
}

func TestDefaultRates(t *testing.T) {
	resolved := DefaultRates("Jane Doe", "")
	if resolved.Role != DefaultRole || resolved.PayType != DefaultPayType {
		t.Fatalf("unexpected defaults: %+v", resolved.RateConfig)
	}
	if resolved.HourlyRate != 30 || resolved.OvertimeRate != 45 {
		t.Fatalf("unexpected rates: %+v", resolved.RateConfig)
	}
	if resolved.Template != TemplateHourly {
		t.Fatalf("unexpected template: %v", resolved.Template)
	}

	advisor := DefaultRates("John Smith", "Service Advisor")
	if advisor.Template != TemplateSalaryCommission {
		t.Fatalf("role should drive the template, got %v", advisor.Template)
	}
}
