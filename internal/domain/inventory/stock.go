package inventory

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type StockStatus string

const (
	OutOfStock StockStatus = "out_of_stock"
	LowStock   StockStatus = "low_stock"
	InStock    StockStatus = "in_stock"
)

// Classify derives the stock status from quantity on hand and the minimum
// threshold. Negative values count as zero.
func Classify(quantity, minimum int) StockStatus {
	if quantity <= 0 {
		return OutOfStock
	}
	if quantity <= minimum {
		return LowStock
	}
	return InStock
}

func Of(p models.Product) StockStatus {
	return Classify(p.Quantity, p.MinimumStock)
}

// NeedsRestock is true for anything that is not in stock.
func NeedsRestock(p models.Product) bool {
	return Of(p) != InStock
}

func (s StockStatus) Label() string {
	switch s {
	case OutOfStock:
		return "Sem Estoque"
	case LowStock:
		return "Estoque Baixo"
	default:
		return "Em Estoque"
	}
}
