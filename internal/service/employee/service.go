package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employee.Repository
}

func NewEmployeeService(repo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{Repository: repo}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
	}

	emp := employee.Employee{
		ID:         uuid.New().String(),
		FullName:   req.FullName,
		Email:      req.Email,
		BaseSalary: req.BaseSalary,
		HireDate:   hireDate,
		IsActive:   true,
	}

	created, err := s.Repository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employeeToResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employeeToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.Service. Unset fields keep their stored value.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	updated, err := s.Repository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employeeToResponse(updated), nil
}

// Deactivate implements employee.Service.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.Repository.Deactivate(ctx, id)
}

func employeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		BaseSalary: emp.BaseSalary,
		HireDate:   emp.HireDate.Format("2006-01-02"),
		IsActive:   emp.IsActive,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
	}
}
