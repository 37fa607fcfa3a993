package exchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Side represents the buy/sell direction of a trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(s)) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Trade models a single executed trade against a listed stock. A Trade is
// immutable once recorded: the ledger only ever appends, never edits or
// deletes.
type Trade struct {
	id       uuid.UUID // Unique record identifier, assigned at construction.
	symbol   string    // Ticker symbol of the traded stock.
	side     Side      // Buy or sell indicator.
	quantity Quantity  // Number of shares traded, a positive whole number.
	price    Money     // Price per share, strictly positive.
	time     time.Time // Instant the trade was executed at.
}

// NewTrade creates a trade record, validating its fields. The caller supplies
// the execution instant; Exchange.Buy and Exchange.Sell stamp the exchange
// clock instead.
func NewTrade(symbol string, at time.Time, side Side, quantity Quantity, price Money) (Trade, error) {
	t := Trade{
		id:       uuid.New(),
		symbol:   strings.ToUpper(symbol),
		side:     side,
		quantity: quantity,
		price:    price,
		time:     at,
	}
	if err := t.validate(); err != nil {
		return Trade{}, err
	}
	return t, nil
}

func (t Trade) validate() error {
	if t.symbol == "" {
		return fmt.Errorf("trade symbol is missing: %w", ErrValidation)
	}
	if t.side != SideBuy && t.side != SideSell {
		return fmt.Errorf("trade side %q is not %s or %s: %w", t.side, SideBuy, SideSell, ErrValidation)
	}
	if !t.quantity.IsPositive() {
		return fmt.Errorf("trade quantity %s is not positive: %w", t.quantity, ErrValidation)
	}
	if !t.quantity.IsWhole() {
		return fmt.Errorf("trade quantity %s is not a whole number of shares: %w", t.quantity, ErrValidation)
	}
	if !t.price.IsPositive() {
		return fmt.Errorf("trade price %s is not positive: %w", t.price, ErrValidation)
	}
	if t.time.IsZero() {
		return fmt.Errorf("trade time is missing: %w", ErrValidation)
	}
	return nil
}

// ID returns the unique identifier of the trade record.
func (t Trade) ID() uuid.UUID { return t.id }

// Symbol returns the ticker symbol of the traded stock.
func (t Trade) Symbol() string { return t.symbol }

// Side returns the buy/sell indicator.
func (t Trade) Side() Side { return t.side }

// Quantity returns the number of shares traded.
func (t Trade) Quantity() Quantity { return t.quantity }

// Price returns the per-share trade price.
func (t Trade) Price() Money { return t.price }

// Time returns the instant the trade was executed at.
func (t Trade) Time() time.Time { return t.time }

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.time.Format(time.RFC3339), t.side, t.quantity, t.symbol, t.price)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.id)
	w.Append("symbol", t.symbol)
	w.Append("side", t.side)
	w.Append("time", t.time.Format(time.RFC3339Nano))
	w.Append("quantity", t.quantity)
	w.Append("price", t.price)
	return w.MarshalJSON()
}
