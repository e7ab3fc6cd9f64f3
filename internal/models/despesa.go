package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contas are the expense accounts a despesa can be booked against.
var Contas = []string{"Revenda", "Servicos", "Impostos", "Pessoal", "Transporte"}

// Tipos classify a despesa as a fixed or variable cost.
var Tipos = []string{"fixo", "variavel"}

// Lojas are the stores of the organization.
var Lojas = []string{"QI", "QNE", "NRT", "SDS"}

// Despesa is an expense. Unpaid despesas are the accounts payable.
type Despesa struct {
	DefaultModel
	Conta      string          `json:"conta" example:"Servicos"`
	Valor      decimal.Decimal `json:"valor" gorm:"type:DECIMAL(20,8)" example:"140.30"`
	Descricao  string          `json:"descricao" example:"Manutencao do ar condicionado"`
	Fornecedor string          `json:"fornecedor" example:"Clima Frio Ltda"` // Fornecedor name, not a foreign key
	Tipo       string          `json:"tipo" example:"variavel"`
	Data       time.Time       `json:"data" example:"2025-03-07T00:00:00Z"` // Business date of the despesa
	Loja       string          `json:"loja" example:"QI"`
	Pago       bool            `json:"pago" example:"true"`

	// Comprovante and Boleto hold document references: share URLs written
	// by the upload pipeline, or legacy/invalid values from migrated data.
	// They are only ever replaced wholesale, never edited.
	Comprovante string `json:"comprovante" example:"https://cloud.example.com/s/r4nd0mt0ken"`
	Boleto      string `json:"boleto" example:"https://cloud.example.com/s/0th3rt0ken"`
}

// BeforeSave normalizes the despesa.
//
// The business date is stored in UTC and all strings are trimmed. A zero
// date defaults to the current day.
func (d *Despesa) BeforeSave(_ *gorm.DB) error {
	if d.Data.IsZero() {
		d.Data = time.Now().In(time.UTC)
	} else {
		d.Data = d.Data.In(time.UTC)
	}

	d.Conta = strings.TrimSpace(d.Conta)
	d.Descricao = strings.TrimSpace(d.Descricao)
	d.Fornecedor = strings.TrimSpace(d.Fornecedor)
	d.Tipo = strings.TrimSpace(d.Tipo)
	d.Loja = strings.TrimSpace(d.Loja)

	return nil
}

// AfterFind updates the business date to use UTC as timezone, see
// DefaultModel.AfterFind.
func (d *Despesa) AfterFind(tx *gorm.DB) error {
	err := d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.Data = d.Data.In(time.UTC)
	return nil
}
