package exchange

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Class defines the class of a listed stock.
type Class int

const (
	// Common stock pays the dividend last declared for it.
	Common Class = iota
	// Preferred stock pays a fixed dividend rate on its par value.
	Preferred
)

func (c Class) String() string {
	switch c {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseClass parses a string into a Class.
func ParseClass(s string) (Class, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("unknown stock class: %q", s)
	}
}

// Stock represents the static descriptive data of one listed instrument.
// A Stock is immutable after creation; market prices are never part of it,
// they are passed explicitly to the metric methods.
type Stock struct {
	symbol       string          // The uppercase alphabetic ticker, unique on the exchange.
	class        Class           // Common or Preferred.
	lastDividend Money           // The last declared dividend per share, zero or more.
	fixedRate    decimal.Decimal // The fixed dividend rate in [0,1]. Preferred only.
	parValue     Money           // The nominal face value, strictly positive.
}

// NewCommonStock creates a common stock record.
func NewCommonStock(symbol string, lastDividend, parValue Money) (Stock, error) {
	s := Stock{symbol: strings.ToUpper(symbol), class: Common, lastDividend: lastDividend, parValue: parValue}
	if err := s.validate(); err != nil {
		return Stock{}, err
	}
	return s, nil
}

// NewPreferredStock creates a preferred stock record with its fixed dividend
// rate expressed as a fraction in [0,1].
func NewPreferredStock(symbol string, lastDividend Money, fixedRate decimal.Decimal, parValue Money) (Stock, error) {
	s := Stock{symbol: strings.ToUpper(symbol), class: Preferred, lastDividend: lastDividend, fixedRate: fixedRate, parValue: parValue}
	if err := s.validate(); err != nil {
		return Stock{}, err
	}
	return s, nil
}

func (s Stock) validate() error {
	if s.symbol == "" {
		return fmt.Errorf("stock symbol is missing: %w", ErrValidation)
	}
	for _, r := range s.symbol {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("stock symbol %q is not alphabetic: %w", s.symbol, ErrValidation)
		}
	}
	if s.lastDividend.IsNegative() {
		return fmt.Errorf("stock %s last dividend %s is negative: %w", s.symbol, s.lastDividend, ErrValidation)
	}
	if !s.parValue.IsPositive() {
		return fmt.Errorf("stock %s par value %s is not positive: %w", s.symbol, s.parValue, ErrValidation)
	}
	if s.class == Preferred && (s.fixedRate.IsNegative() || s.fixedRate.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("stock %s fixed dividend rate %s is not in [0,1]: %w", s.symbol, s.fixedRate, ErrValidation)
	}
	return nil
}

// Symbol returns the uppercase ticker symbol of the stock.
func (s Stock) Symbol() string { return s.symbol }

// Class returns the stock class, Common or Preferred.
func (s Stock) Class() Class { return s.class }

// LastDividend returns the last declared dividend per share.
func (s Stock) LastDividend() Money { return s.lastDividend }

// FixedRate returns the fixed dividend rate. It is zero for common stock.
func (s Stock) FixedRate() decimal.Decimal { return s.fixedRate }

// ParValue returns the nominal face value of the stock.
func (s Stock) ParValue() Money { return s.parValue }

// DividendYield returns the dividend yield at the given market price as a
// dimensionless ratio: lastDividend/price for common stock,
// fixedRate·parValue/price for preferred stock.
//
// The ratio is undefined for a price that is not strictly positive, reported
// as an error wrapping ErrUndefined.
func (s Stock) DividendYield(price Money) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("dividend yield of %s at price %s: %w", s.symbol, price, ErrUndefined)
	}
	if s.class == Preferred {
		return s.parValue.Scale(s.fixedRate).Ratio(price), nil
	}
	return s.lastDividend.Ratio(price), nil
}

// PriceEarnings returns the price-earnings ratio at the given market price,
// price/lastDividend.
//
// A stock that pays no dividend has no price-earnings ratio; that outcome is
// reported as an error wrapping ErrUndefined rather than a division by zero.
func (s Stock) PriceEarnings(price Money) (decimal.Decimal, error) {
	if s.lastDividend.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("price-earnings of %s: no dividend: %w", s.symbol, ErrUndefined)
	}
	return price.Ratio(s.lastDividend), nil
}

// String prints a one-line summary of the stock record.
func (s Stock) String() string {
	if s.class == Preferred {
		return fmt.Sprintf("%s (%s): last dividend %s, fixed rate %s, par %s",
			s.symbol, s.class, s.lastDividend, NewPercent(s.fixedRate), s.parValue)
	}
	return fmt.Sprintf("%s (%s): last dividend %s, par %s",
		s.symbol, s.class, s.lastDividend, s.parValue)
}

// MarshalJSON implements the json.Marshaler interface for Stock.
func (s Stock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.symbol)
	w.Append("class", s.class.String())
	w.Append("lastDividend", s.lastDividend)
	if s.class == Preferred {
		w.Append("fixedRate", s.fixedRate)
	}
	w.Append("parValue", s.parValue)
	return w.MarshalJSON()
}
