package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanModel represents the database persistence model for plans
// This is the anti-corruption layer between domain and database
type PlanModel struct {
	ID          uint            `gorm:"primarykey"`
	Name        string          `gorm:"uniqueIndex;not null;size:100"`
	Description string          `gorm:"size:500"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Periodicity int             `gorm:"not null"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
