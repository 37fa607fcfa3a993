package exchange

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AllShareIndex computes the geometric mean of the latest trade price of
// every listed stock: (∏ priceᵢ)^(1/n). Stocks that never traded contribute
// no price and are excluded from the mean.
//
// The mean is undefined until at least one listed stock has a recorded trade;
// that outcome is reported as an error wrapping ErrUndefined.
//
// The product is accumulated in log space so that many large prices cannot
// overflow.
func (e *Exchange) AllShareIndex() (decimal.Decimal, error) {
	var logSum float64
	var n int
	for s := range e.AllStocks() {
		price, err := e.LatestPrice(s.symbol)
		if err != nil {
			continue // never traded
		}
		logSum += math.Log(price.AsFloat())
		n++
	}
	if n == 0 {
		return decimal.Decimal{}, fmt.Errorf("all-share index: no stock has any recorded trade: %w", ErrUndefined)
	}
	return decimal.NewFromFloat(math.Exp(logSum / float64(n))), nil
}
