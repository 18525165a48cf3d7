package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	Email      string
	BaseSalary decimal.Decimal
	HireDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
