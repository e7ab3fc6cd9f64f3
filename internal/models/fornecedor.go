package models

import (
	"strings"

	"gorm.io/gorm"
)

// Fornecedor is a vendor. Despesas and compras reference fornecedores by
// name, not by ID, so a record's fornecedor text may not match any row
// here.
type Fornecedor struct {
	DefaultModel
	Nome string `json:"nome" gorm:"uniqueIndex" example:"Distribuidora Sao Jorge"`
}

// TableName returns the Portuguese plural. gorm's pluralizer only
// knows English and would name the table "fornecedors".
func (Fornecedor) TableName() string {
	return "fornecedores"
}

// BeforeSave trims the name.
func (f *Fornecedor) BeforeSave(_ *gorm.DB) error {
	f.Nome = strings.TrimSpace(f.Nome)
	return nil
}
