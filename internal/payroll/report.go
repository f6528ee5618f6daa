package payroll

// reportTotals is everything Calculate derived; assemble only copies.
type reportTotals struct {
	week1, week2 WeeklyBreakdown
	ptoPay       float64
	holidayPay   float64
	salaryPay    float64
	grossProfit  float64
	commission   float64
	totalGross   float64
}

// assemble packs the computed values into the final report record. Pure
// packaging: no arithmetic beyond the derived effective rate, so every
// displayed number traces back to a stored field.
func assemble(hours EmployeeHours, rates Resolved, totals reportTotals) EmployeeReport {
	return EmployeeReport{
		Name:           hours.Name,
		Role:           rates.Role,
		PayType:        rates.PayType,
		HourlyRate:     rates.HourlyRate,
		OvertimeRate:   rates.OvertimeRate,
		SalaryAmount:   rates.SalaryAmount,
		CommissionRate: rates.CommissionRate,
		IncentiveRate:  rates.IncentiveRate,
		Week1:          totals.week1,
		Week2:          totals.week2,
		PTO:            rates.PTOHours,
		Holiday:        rates.HolidayHours,
		PTOPay:         totals.ptoPay,
		HolidayPay:     totals.holidayPay,
		SalaryPay:      totals.salaryPay,
		GrossProfit:    totals.grossProfit,
		Commission:     totals.commission,
		TotalGross:     totals.totalGross,
		EffectiveRate:  safeDiv(totals.totalGross, hours.Week1.TotalHours+hours.Week2.TotalHours),
	}
}
