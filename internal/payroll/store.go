package payroll

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

// SaveRateConfigs replaces the rate table for a shop. Rates are confirmed
// as a set in the UI, so a full rewrite keeps the store in step with what
// the user last saw.
func (s *Store) SaveRateConfigs(ctx context.Context, shopID string, configs []RateConfig) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM payroll_rates WHERE shop_id = $1", shopID); err != nil {
		return err
	}

	for _, rc := range configs {
		_, err := tx.Exec(ctx, `
      INSERT INTO payroll_rates
        (shop_id, name, role, pay_type, hourly_rate, overtime_rate, salary_amount, commission_rate, incentive_rate, pto_hours, holiday_hours)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, shopID, rc.Name, rc.Role, rc.PayType, rc.HourlyRate, rc.OvertimeRate, rc.SalaryAmount, rc.CommissionRate, rc.IncentiveRate, rc.PTOHours, rc.HolidayHours)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) ListRateConfigs(ctx context.Context, shopID string) ([]RateConfig, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT name, role, pay_type, hourly_rate, overtime_rate, salary_amount, commission_rate, incentive_rate, pto_hours, holiday_hours
    FROM payroll_rates
    WHERE shop_id = $1
    ORDER BY name
  `, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []RateConfig
	for rows.Next() {
		var rc RateConfig
		if err := rows.Scan(&rc.Name, &rc.Role, &rc.PayType, &rc.HourlyRate, &rc.OvertimeRate, &rc.SalaryAmount, &rc.CommissionRate, &rc.IncentiveRate, &rc.PTOHours, &rc.HolidayHours); err != nil {
			return nil, err
		}
		configs = append(configs, rc)
	}
	return configs, rows.Err()
}

// SaveSubmission records one processed payroll run with its reports.
func (s *Store) SaveSubmission(ctx context.Context, sub Submission) (string, error) {
	reports, err := json.Marshal(sub.Reports)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO payroll_submissions
      (shop_id, pay_period_start, pay_period_end, status, employee_count, total_amount, reports)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, sub.ShopID, sub.PayPeriodStart, sub.PayPeriodEnd, sub.Status, sub.EmployeeCount, sub.TotalAmount, reports).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListSubmissions(ctx context.Context, shopID string) ([]Submission, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, shop_id, pay_period_start, pay_period_end, status, employee_count, total_amount, created_at
    FROM payroll_submissions
    WHERE shop_id = $1
    ORDER BY created_at DESC
  `, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.ShopID, &sub.PayPeriodStart, &sub.PayPeriodEnd, &sub.Status, &sub.EmployeeCount, &sub.TotalAmount, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// GetSubmission returns one stored run including its report payloads.
func (s *Store) GetSubmission(ctx context.Context, shopID, submissionID string) (*Submission, error) {
	var sub Submission
	var reports []byte
	err := s.DB.QueryRow(ctx, `
    SELECT id, shop_id, pay_period_start, pay_period_end, status, employee_count, total_amount, reports, created_at
    FROM payroll_submissions
    WHERE shop_id = $1 AND id = $2
  `, shopID, submissionID).Scan(&sub.ID, &sub.ShopID, &sub.PayPeriodStart, &sub.PayPeriodEnd, &sub.Status, &sub.EmployeeCount, &sub.TotalAmount, &reports, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(reports) > 0 {
		if err := json.Unmarshal(reports, &sub.Reports); err != nil {
			return nil, err
		}
	}
	return &sub, nil
}
