package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Compra is a purchase from a fornecedor.
type Compra struct {
	DefaultModel
	Fornecedor string          `json:"fornecedor" example:"Distribuidora Sao Jorge"` // Fornecedor name, not a foreign key
	Valor      decimal.Decimal `json:"valor" gorm:"type:DECIMAL(20,8)" example:"1250.00"`
	NF         string          `json:"nf" example:"48213"` // Invoice number. Stored as string, historical rows mix types
	Data       time.Time       `json:"data" example:"2025-03-07T00:00:00Z"`
}

// BeforeSave normalizes the compra, see Despesa.BeforeSave.
func (c *Compra) BeforeSave(_ *gorm.DB) error {
	if c.Data.IsZero() {
		c.Data = time.Now().In(time.UTC)
	} else {
		c.Data = c.Data.In(time.UTC)
	}

	c.Fornecedor = strings.TrimSpace(c.Fornecedor)
	c.NF = strings.TrimSpace(c.NF)

	return nil
}

// AfterFind updates the business date to use UTC as timezone.
func (c *Compra) AfterFind(tx *gorm.DB) error {
	err := c.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	c.Data = c.Data.In(time.UTC)
	return nil
}
