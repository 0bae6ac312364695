package service

import (
	"hash/fnv"
	"math"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// Fallback prices are whole amounts in [minFallbackPrice, minFallbackPrice+fallbackPriceSpan)
const (
	minFallbackPrice  = 5
	fallbackPriceSpan = 20
)

// Price returns the catalog price of book, or a stable fallback derived from its id
func Price(book domain.Book, currency string) domain.Money {
	if p, ok := book.CatalogPrice(); ok {
		if p.CurrencyCode == "" {
			p.CurrencyCode = currency
		}
		return p
	}

	h := fnv.New32a()
	h.Write([]byte(book.ID))
	amount := float64(minFallbackPrice + h.Sum32()%fallbackPriceSpan)
	return domain.Money{Amount: amount, CurrencyCode: currency}
}

// roundCents rounds to two decimal places
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
