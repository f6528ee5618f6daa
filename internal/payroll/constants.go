package payroll

const (
	// Weekly overtime threshold in hours.
	OvertimeThreshold = 40.0

	// Salary figures are annual; a pay period covers two weeks.
	PayPeriodsPerYear = 26.0

	DefaultHourlyRate         = 30.0
	DefaultOvertimeMultiplier = 1.5
	DefaultIncentiveRate      = 7.5
	DefaultRole               = "Technician"
	DefaultPayType            = PayTypeHourly
)

const (
	PayTypeHourly            = "Hourly"
	PayTypeHourlyProficiency = "Hourly + Proficiency"
	PayTypeFlatRate          = "Flat Rate"
	PayTypeSalary            = "Salary"
	PayTypeSalaryCommission  = "Salary + Commission"
	PayTypePartTimeHourly    = "Part Time Hourly"
)

const (
	SubmissionStatusDraft     = "Draft"
	SubmissionStatusSubmitted = "Submitted"
	SubmissionStatusProcessed = "Processed"
)
