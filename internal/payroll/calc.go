package payroll

// Calculate computes every pay component for one employee under the
// resolved template. It never fails: missing inputs are already zero and
// all divisions are guarded. totalGross is the sum of exactly the
// components the template defines — nothing from another variant leaks in.
func Calculate(hours EmployeeHours, rates Resolved, holidayRate float64) EmployeeReport {
	var week1, week2 WeeklyBreakdown
	var ptoPay, holidayPay, salaryPay, grossProfit, commission, total float64

	switch rates.Template {
	case TemplateProficiency:
		week1 = hourlyWeek(hours.Week1, rates, true)
		week2 = hourlyWeek(hours.Week2, rates, true)
		ptoPay = rates.PTOHours * rates.HourlyRate
		holidayPay = rates.HolidayHours * holidayRate
		total = week1.WorkedPay + week1.OvertimePay + week2.WorkedPay + week2.OvertimePay +
			week1.Incentive + week2.Incentive + ptoPay + holidayPay

	case TemplateSalaryCommission:
		week1 = displayWeek(hours.Week1)
		week2 = displayWeek(hours.Week2)
		salaryPay = rates.SalaryAmount / PayPeriodsPerYear
		grossProfit = hours.Week1.LaborSales + hours.Week2.LaborSales
		commission = grossProfit * rates.CommissionRate / 100
		total = salaryPay + commission

	case TemplatePartTime:
		week1 = partTimeWeek(hours.Week1, rates)
		week2 = partTimeWeek(hours.Week2, rates)
		total = week1.WorkedPay + week2.WorkedPay

	default: // TemplateHourly
		week1 = hourlyWeek(hours.Week1, rates, false)
		week2 = hourlyWeek(hours.Week2, rates, false)
		ptoPay = rates.PTOHours * rates.HourlyRate
		holidayPay = rates.HolidayHours * holidayRate
		total = week1.WorkedPay + week1.OvertimePay + week2.WorkedPay + week2.OvertimePay +
			ptoPay + holidayPay
	}

	return assemble(hours, rates, reportTotals{
		week1:       week1,
		week2:       week2,
		ptoPay:      ptoPay,
		holidayPay:  holidayPay,
		salaryPay:   salaryPay,
		grossProfit: grossProfit,
		commission:  commission,
		totalGross:  total,
	})
}

// hourlyWeek applies the 40-hour split. regular + overtime always equals
// the clocked total.
func hourlyWeek(w WeekData, rates Resolved, withIncentive bool) WeeklyBreakdown {
	worked := w.TotalHours
	overtime := 0.0
	if worked > OvertimeThreshold {
		overtime = worked - OvertimeThreshold
		worked = OvertimeThreshold
	}

	breakdown := WeeklyBreakdown{
		WorkedHours: worked,
		Overtime:    overtime,
		BilledHours: w.BilledHours,
		Proficiency: w.Efficiency,
		WorkedPay:   worked * rates.HourlyRate,
		OvertimePay: overtime * rates.OvertimeRate,
	}
	if withIncentive && w.HasBilled {
		breakdown.Incentive = w.BilledHours * rates.IncentiveRate
	}
	return breakdown
}

// partTimeWeek pays every clocked hour at the straight rate: no cap, no
// overtime.
func partTimeWeek(w WeekData, rates Resolved) WeeklyBreakdown {
	return WeeklyBreakdown{
		WorkedHours: w.TotalHours,
		BilledHours: w.BilledHours,
		Proficiency: w.Efficiency,
		WorkedPay:   w.TotalHours * rates.HourlyRate,
	}
}

// displayWeek carries the hour figures for rendering without contributing
// any pay. Salaried templates ignore clocked hours entirely.
func displayWeek(w WeekData) WeeklyBreakdown {
	return WeeklyBreakdown{
		WorkedHours: w.TotalHours,
		BilledHours: w.BilledHours,
		Proficiency: w.Efficiency,
	}
}

// safeDiv guards the zero-hours case: derived rates are 0, never Inf/NaN.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
