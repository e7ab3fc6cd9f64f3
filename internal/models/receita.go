package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceitaContas are the payment channels a receita can come in through.
var ReceitaContas = []string{"Dinheiro", "Pix", "Cartao"}

// Receita is a revenue entry for one of the stores.
type Receita struct {
	DefaultModel
	Conta     string          `json:"conta" example:"Pix"`
	Loja      string          `json:"loja" example:"QNE"`
	Valor     decimal.Decimal `json:"valor" gorm:"type:DECIMAL(20,8)" example:"3200.00"`
	Descricao string          `json:"descricao" example:"Fechamento do caixa"`
	Data      time.Time       `json:"data" example:"2025-03-07T00:00:00Z"`
}

// TableName returns the Portuguese plural. gorm's pluralizer only
// knows English and would name the table "receita".
func (Receita) TableName() string {
	return "receitas"
}

// BeforeSave normalizes the receita, see Despesa.BeforeSave.
func (r *Receita) BeforeSave(_ *gorm.DB) error {
	if r.Data.IsZero() {
		r.Data = time.Now().In(time.UTC)
	} else {
		r.Data = r.Data.In(time.UTC)
	}

	r.Conta = strings.TrimSpace(r.Conta)
	r.Loja = strings.TrimSpace(r.Loja)
	r.Descricao = strings.TrimSpace(r.Descricao)

	return nil
}

// AfterFind updates the business date to use UTC as timezone.
func (r *Receita) AfterFind(tx *gorm.DB) error {
	err := r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.Data = r.Data.In(time.UTC)
	return nil
}
