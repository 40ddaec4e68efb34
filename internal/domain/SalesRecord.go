// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// SalesRecord é a linha canônica do ledger de vendas.
// Chave natural: (Date, Account, ASIN); reingestões sobrescrevem gross/net.
type SalesRecord struct {
	ID         int64     `json:"id,omitempty"`
	Date       time.Time `json:"date"`
	Account    string    `json:"account"`
	ASIN       string    `json:"asin"`
	GrossSales float64   `json:"gross_sales"`
	NetSales   float64   `json:"net_sales"`
}

// NormalizeASIN coloca um ASIN na forma canônica: maiúsculo e sem espaços nas bordas.
func NormalizeASIN(asin string) string {
	return strings.ToUpper(strings.TrimSpace(asin))
}
