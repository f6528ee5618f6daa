package payroll

import "strings"

// Template is the outer report variant, chosen from role text once during
// rate resolution so that calculation never string-matches.
type Template int

const (
	// TemplateHourly is the plain hourly report and the fallback for
	// unmatched roles.
	TemplateHourly Template = iota
	// TemplateProficiency is hourly plus a billed-hours incentive. Flat
	// Rate reuses this template with the same formulas.
	TemplateProficiency
	// TemplateSalaryCommission covers salaried staff; commission may be 0.
	TemplateSalaryCommission
	// TemplatePartTime is uncapped hourly with no overtime.
	TemplatePartTime
)

// Resolved is a RateConfig with both dispatch tags already decided.
type Resolved struct {
	RateConfig
	Template Template
}

// ResolveTemplate picks the report template from role and pay type text.
// Role decides the family; pay type refines it for technicians only.
func ResolveTemplate(role, payType string) Template {
	r := strings.ToLower(role)
	p := strings.ToLower(payType)

	switch {
	case strings.Contains(r, "technician"):
		switch {
		case strings.Contains(p, "hourly + proficiency"):
			return TemplateProficiency
		case strings.Contains(p, "hourly"):
			return TemplateHourly
		case strings.Contains(p, "flat rate"):
			return TemplateProficiency
		case strings.Contains(p, "salary"):
			return TemplateSalaryCommission
		}
		return TemplateHourly
	case strings.Contains(r, "service advisor"), strings.Contains(r, "manager"), strings.Contains(r, "admin"):
		return TemplateSalaryCommission
	case strings.Contains(r, "part time"):
		return TemplatePartTime
	}
	return TemplateHourly
}

// RateTable maps folded employee names to their rate configuration.
type RateTable map[string]RateConfig

// NewRateTable builds a lookup table from the externally supplied configs.
// Duplicate names keep the first entry.
func NewRateTable(configs []RateConfig) RateTable {
	table := make(RateTable, len(configs))
	for _, rc := range configs {
		key := joinKey(rc.Name)
		if key == "" {
			continue
		}
		if _, exists := table[key]; exists {
			continue
		}
		table[key] = rc
	}
	return table
}

// Resolve returns the finished rate parameters for an employee. The report
// pipeline is rate-table-gated: no entry means the employee is skipped by
// the caller, never defaulted.
func (t RateTable) Resolve(name string) (Resolved, bool) {
	rc, ok := t[joinKey(name)]
	if !ok {
		return Resolved{}, false
	}
	return finishResolve(rc), true
}

// DefaultRates is the fixed fallback used only by the single-file
// submission mode: a $30/hr technician with 1.5x overtime.
func DefaultRates(name, role string) Resolved {
	if strings.TrimSpace(role) == "" {
		role = DefaultRole
	}
	return finishResolve(RateConfig{
		Name:          strings.TrimSpace(name),
		Role:          role,
		PayType:       DefaultPayType,
		HourlyRate:    DefaultHourlyRate,
		IncentiveRate: DefaultIncentiveRate,
	})
}

func finishResolve(rc RateConfig) Resolved {
	if rc.OvertimeRate == 0 {
		rc.OvertimeRate = rc.HourlyRate * DefaultOvertimeMultiplier
	}
	return Resolved{
		RateConfig: rc,
		Template:   ResolveTemplate(rc.Role, rc.PayType),
	}
}
