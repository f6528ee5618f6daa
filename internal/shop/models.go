package shop

import "time"

type Shop struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"ownerId"`
	Name              string    `json:"name"`
	NumberOfEmployees int       `json:"numberOfEmployees"`
	Specialty         string    `json:"specialty"`
	PayrollType       string    `json:"payrollType"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Employee struct {
	ID             string    `json:"id"`
	ShopID         string    `json:"shopId"`
	Name           string    `json:"name"`
	StartDate      string    `json:"startDate"`
	Role           string    `json:"role"`
	PayType        string    `json:"payType"`
	HourlyRate     float64   `json:"hourlyRate"`
	SalaryAmount   float64   `json:"salaryAmount"`
	CommissionRate float64   `json:"commissionRate"`
	CommissionType string    `json:"commissionType"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

var Specialties = []string{"General Auto Repair", "Auto Body/Collision Repair", "Restoration"}

var PayrollTypes = []string{"Weekly", "Bi-weekly"}

var Roles = []string{"Technician", "Service Advisor", "Manager", "Owner", "Part Time Hourly"}

var PayTypes = []string{"Hourly", "Hourly + Proficiency", "Flat Rate", "Salary", "Salary + Commission", "Part Time Hourly"}
