package models

import "github.com/shopspring/decimal"

func init() {
	// Prices are exchanged as JSON numbers with the hosted backend.
	decimal.MarshalJSONWithoutQuotes = true
}
