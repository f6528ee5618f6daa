package payroll

import "time"

// WeeklyBreakdown holds the derived numbers for one employee-week. Every
// field is computed by Calculate; none are taken from input directly.
type WeeklyBreakdown struct {
	WorkedHours float64 `json:"workedHours"`
	Overtime    float64 `json:"overtime"`
	BilledHours float64 `json:"billedHours"`
	Proficiency float64 `json:"proficiency"`
	WorkedPay   float64 `json:"workedPay"`
	OvertimePay float64 `json:"overtimePay"`
	Incentive   float64 `json:"incentive"`
}

// EmployeeReport is the final per-employee record handed to rendering.
// It is assembled once per processing run and never mutated afterwards;
// every displayed number is reproducible from the stored fields.
type EmployeeReport struct {
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	PayType        string          `json:"payType"`
	HourlyRate     float64         `json:"hourlyRate"`
	OvertimeRate   float64         `json:"overtimeRate"`
	SalaryAmount   float64         `json:"salaryAmount"`
	CommissionRate float64         `json:"commissionRate"`
	IncentiveRate  float64         `json:"incentiveRate"`
	Week1          WeeklyBreakdown `json:"week1"`
	Week2          WeeklyBreakdown `json:"week2"`
	PTO            float64         `json:"pto"`
	Holiday        float64         `json:"holiday"`
	PTOPay         float64         `json:"ptoPay"`
	HolidayPay     float64         `json:"holidayPay"`
	SalaryPay      float64         `json:"salaryPay"`
	GrossProfit    float64         `json:"grossProfit"`
	Commission     float64         `json:"commission"`
	TotalGross     float64         `json:"totalGross"`
	EffectiveRate  float64         `json:"effectiveRate"`
}

// RateConfig is the externally supplied compensation configuration for one
// employee, keyed by display name.
type RateConfig struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	PayType        string  `json:"payType"`
	HourlyRate     float64 `json:"hourlyRate"`
	OvertimeRate   float64 `json:"overtimeRate"`
	SalaryAmount   float64 `json:"salaryAmount"`
	CommissionRate float64 `json:"commissionRate"`
	IncentiveRate  float64 `json:"incentiveRate"`
	PTOHours       float64 `json:"ptoHours"`
	HolidayHours   float64 `json:"holidayHours"`
}

// WeekData is one employee's joined clocked + billed data for a single week.
type WeekData struct {
	TotalHours  float64 `json:"totalHours"`
	BilledHours float64 `json:"billedHours"`
	Efficiency  float64 `json:"efficiency"`
	LaborSales  float64 `json:"laborSales"`
	HasBilled   bool    `json:"hasBilled"`
}

// EmployeeHours is the join output: one entry per distinct employee name
// seen in either week's clocked-time table.
type EmployeeHours struct {
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Week1 WeekData `json:"week1"`
	Week2 WeekData `json:"week2"`
}

// Submission is one stored payroll run for a shop.
type Submission struct {
	ID             string           `json:"id"`
	ShopID         string           `json:"shopId"`
	PayPeriodStart string           `json:"payPeriodStart"`
	PayPeriodEnd   string           `json:"payPeriodEnd"`
	Status         string           `json:"status"`
	EmployeeCount  int              `json:"employeeCount"`
	TotalAmount    float64          `json:"totalAmount"`
	Reports        []EmployeeReport `json:"reports,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}
