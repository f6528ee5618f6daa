package shop

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) CreateShop(ctx context.Context, ownerID string, shop Shop) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shops (owner_id, name, number_of_employees, specialty, payroll_type)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, ownerID, shop.Name, shop.NumberOfEmployees, shop.Specialty, shop.PayrollType).Scan(&id)
	return id, err
}

func (s *Store) ListShops(ctx context.Context, ownerID string) ([]Shop, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, owner_id, name, number_of_employees, specialty, payroll_type, created_at, updated_at
    FROM shops
    WHERE owner_id = $1
    ORDER BY created_at
  `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []Shop
	for rows.Next() {
		var sh Shop
		if err := rows.Scan(&sh.ID, &sh.OwnerID, &sh.Name, &sh.NumberOfEmployees, &sh.Specialty, &sh.PayrollType, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, err
		}
		shops = append(shops, sh)
	}
	return shops, rows.Err()
}

func (s *Store) GetShop(ctx context.Context, ownerID, shopID string) (*Shop, error) {
	var sh Shop
	err := s.DB.QueryRow(ctx, `
    SELECT id, owner_id, name, number_of_employees, specialty, payroll_type, created_at, updated_at
    FROM shops
    WHERE id = $1 AND owner_id = $2
  `, shopID, ownerID).Scan(&sh.ID, &sh.OwnerID, &sh.Name, &sh.NumberOfEmployees, &sh.Specialty, &sh.PayrollType, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *Store) UpdateShop(ctx context.Context, ownerID, shopID string, shop Shop) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE shops
    SET name = $3, number_of_employees = $4, specialty = $5, payroll_type = $6, updated_at = now()
    WHERE id = $1 AND owner_id = $2
  `, shopID, ownerID, shop.Name, shop.NumberOfEmployees, shop.Specialty, shop.PayrollType)
	return err
}

func (s *Store) CreateEmployee(ctx context.Context, shopID string, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shop_employees (shop_id, name, start_date, role, pay_type, hourly_rate, salary_amount, commission_rate, commission_type)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id
  `, shopID, emp.Name, emp.StartDate, emp.Role, emp.PayType, emp.HourlyRate, emp.SalaryAmount, emp.CommissionRate, emp.CommissionType).Scan(&id)
	return id, err
}

func (s *Store) ListEmployees(ctx context.Context, shopID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, shop_id, name, start_date, role, pay_type, hourly_rate, salary_amount, commission_rate, commission_type, created_at, updated_at
    FROM shop_employees
    WHERE shop_id = $1
    ORDER BY name
  `, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.ShopID, &emp.Name, &emp.StartDate, &emp.Role, &emp.PayType, &emp.HourlyRate, &emp.SalaryAmount, &emp.CommissionRate, &emp.CommissionType, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, shopID, employeeID string, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE shop_employees
    SET name = $3, start_date = $4, role = $5, pay_type = $6, hourly_rate = $7, salary_amount = $8, commission_rate = $9, commission_type = $10, updated_at = now()
    WHERE id = $2 AND shop_id = $1
  `, shopID, employeeID, emp.Name, emp.StartDate, emp.Role, emp.PayType, emp.HourlyRate, emp.SalaryAmount, emp.CommissionRate, emp.CommissionType)
	return err
}

func (s *Store) DeleteEmployee(ctx context.Context, shopID, employeeID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM shop_employees WHERE id = $2 AND shop_id = $1", shopID, employeeID)
	return err
}
