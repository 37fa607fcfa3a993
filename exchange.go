package exchange

import (
	"fmt"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// Exchange owns the registry of listed stocks and the append-only ledger of
// trades recorded against them.
//
// Trades are kept in insertion order; queries over a symbol are linear scans,
// which is fine for the trade volumes this exchange sees. The Exchange is not
// safe for concurrent writers.
type Exchange struct {
	currency string
	window   time.Duration
	clock    clockwork.Clock

	trades  []Trade
	listing []string         // symbols in listing order
	index   map[string]Stock // index stocks by symbol
}

// Option configures an Exchange at construction.
type Option func(*Exchange)

// WithClock sets the time source used to stamp trades and to anchor trailing
// windows. Tests inject a fake clock here.
func WithClock(c clockwork.Clock) Option {
	return func(e *Exchange) { e.clock = c }
}

// WithCurrency sets the currency all trades on the exchange are priced in.
func WithCurrency(currency string) Option {
	return func(e *Exchange) { e.currency = currency }
}

// WithWindow sets the trailing duration used by TickerPrice.
func WithWindow(d time.Duration) Option {
	return func(e *Exchange) { e.window = d }
}

// NewExchange creates an empty exchange. By default it trades in GBP, averages
// ticker prices over the trailing 15 minutes, and reads the system clock.
func NewExchange(opts ...Option) *Exchange {
	e := &Exchange{
		currency: "GBP",
		window:   DefaultWindow,
		clock:    clockwork.NewRealClock(),
		index:    make(map[string]Stock),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the current instant of the exchange clock.
func (e *Exchange) Now() time.Time { return e.clock.Now() }

// List registers a stock on the exchange. Its symbol must not be listed yet.
func (e *Exchange) List(s Stock) error {
	if err := s.validate(); err != nil {
		return err
	}
	if _, ok := e.index[s.symbol]; ok {
		return fmt.Errorf("stock %s is already listed: %w", s.symbol, ErrValidation)
	}
	e.index[s.symbol] = s
	e.listing = append(e.listing, s.symbol)
	return nil
}

// Stock returns the stock listed under this symbol.
func (e *Exchange) Stock(symbol string) (Stock, error) {
	s, ok := e.index[symbol]
	if !ok {
		return Stock{}, fmt.Errorf("stock %q: %w", symbol, ErrUnknownStock)
	}
	return s, nil
}

// Has returns true if a stock is listed under this symbol.
func (e *Exchange) Has(symbol string) bool {
	_, ok := e.index[symbol]
	return ok
}

// AllStocks returns an iterator over the listed stocks, in listing order.
func (e *Exchange) AllStocks() iter.Seq[Stock] {
	return func(yield func(Stock) bool) {
		for _, symbol := range e.listing {
			if !yield(e.index[symbol]) {
				return
			}
		}
	}
}

// Record appends a trade to the ledger. The trade's symbol must be listed,
// its price must be in the exchange currency, and its time must not be in the
// future of the exchange clock. Recorded trades are never edited or deleted.
func (e *Exchange) Record(t Trade) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, ok := e.index[t.symbol]; !ok {
		return fmt.Errorf("trade on %q: %w", t.symbol, ErrUnknownStock)
	}
	if c := t.price.Currency(); c != "" && c != e.currency {
		return fmt.Errorf("trade on %s priced in %s, exchange trades in %s: %w", t.symbol, c, e.currency, ErrValidation)
	}
	if t.time.After(e.clock.Now()) {
		return fmt.Errorf("trade on %s dated %s is in the future: %w", t.symbol, t.time.Format(time.RFC3339), ErrValidation)
	}
	e.trades = append(e.trades, t)
	return nil
}

// Buy records a buy trade at the current instant of the exchange clock.
func (e *Exchange) Buy(symbol string, quantity Quantity, price Money) (Trade, error) {
	return e.trade(symbol, SideBuy, quantity, price)
}

// Sell records a sell trade at the current instant of the exchange clock.
func (e *Exchange) Sell(symbol string, quantity Quantity, price Money) (Trade, error) {
	return e.trade(symbol, SideSell, quantity, price)
}

func (e *Exchange) trade(symbol string, side Side, quantity Quantity, price Money) (Trade, error) {
	t, err := NewTrade(symbol, e.clock.Now(), side, quantity, price)
	if err != nil {
		return Trade{}, err
	}
	if err := e.Record(t); err != nil {
		return Trade{}, err
	}
	return t, nil
}

// Trades returns an iterator over the trades recorded for a symbol, in
// insertion order.
func (e *Exchange) Trades(symbol string) iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range e.trades {
			if t.symbol != symbol {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// VolumeWeightedPrice computes the volume-weighted average trade price of a
// symbol over the given window: Σ(priceᵢ·quantityᵢ)/Σ(quantityᵢ) across the
// trades whose time falls within the window.
//
// A window containing no trades has no average; that outcome is reported as
// an error wrapping ErrUndefined, never as a zero price.
func (e *Exchange) VolumeWeightedPrice(symbol string, w Window) (Money, error) {
	if _, ok := e.index[symbol]; !ok {
		return Money{}, fmt.Errorf("weighted price of %q: %w", symbol, ErrUnknownStock)
	}
	value := M(0, e.currency)
	quantity := Q(0)
	for t := range e.Trades(symbol) {
		if !w.Contains(t.time) {
			continue
		}
		value = value.Add(t.price.Mul(t.quantity))
		quantity = quantity.Add(t.quantity)
	}
	if quantity.IsZero() {
		return Money{}, fmt.Errorf("weighted price of %s over %s: no trades in window: %w", symbol, w, ErrUndefined)
	}
	return value.Div(quantity), nil
}

// TickerPrice computes the volume-weighted price of a symbol over the
// exchange's trailing window ending now.
func (e *Exchange) TickerPrice(symbol string) (Money, error) {
	return e.VolumeWeightedPrice(symbol, TrailingWindow(e.clock.Now(), e.window))
}

// LatestPrice returns the price of the most recently recorded trade for a
// symbol, or an error wrapping ErrUndefined when no trade was ever recorded
// for it.
func (e *Exchange) LatestPrice(symbol string) (Money, error) {
	if _, ok := e.index[symbol]; !ok {
		return Money{}, fmt.Errorf("latest price of %q: %w", symbol, ErrUnknownStock)
	}
	for i := len(e.trades) - 1; i >= 0; i-- {
		if e.trades[i].symbol == symbol {
			return e.trades[i].price, nil
		}
	}
	return Money{}, fmt.Errorf("latest price of %s: no trades recorded: %w", symbol, ErrUndefined)
}

// DividendYield computes the dividend yield of a listed stock at the given
// market price.
func (e *Exchange) DividendYield(symbol string, price Money) (decimal.Decimal, error) {
	s, err := e.Stock(symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return s.DividendYield(price)
}

// PriceEarnings computes the price-earnings ratio of a listed stock at the
// given market price.
func (e *Exchange) PriceEarnings(symbol string, price Money) (decimal.Decimal, error) {
	s, err := e.Stock(symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return s.PriceEarnings(price)
}
