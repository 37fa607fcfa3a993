package exchange

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// epoch is the fixed instant every time-sensitive test anchors its fake clock at.
var epoch = time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

// mustCommon builds a common stock from pence values or fails the test.
func mustCommon(t *testing.T, symbol string, lastDividend, parValue int) Stock {
	t.Helper()
	s, err := NewCommonStock(symbol, M(lastDividend, "GBP"), M(parValue, "GBP"))
	if err != nil {
		t.Fatalf("NewCommonStock(%q) failed: %v", symbol, err)
	}
	return s
}

// mustPreferred builds a preferred stock from pence values and a fractional
// fixed rate, or fails the test.
func mustPreferred(t *testing.T, symbol string, lastDividend int, fixedRate float64, parValue int) Stock {
	t.Helper()
	s, err := NewPreferredStock(symbol, M(lastDividend, "GBP"), decimal.NewFromFloat(fixedRate), M(parValue, "GBP"))
	if err != nil {
		t.Fatalf("NewPreferredStock(%q) failed: %v", symbol, err)
	}
	return s
}

// newTestExchange returns an exchange listing the GBCE sample stocks, with a
// fake clock anchored at epoch.
func newTestExchange(t *testing.T) (*Exchange, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(epoch)
	e := NewExchange(WithClock(clock))
	for _, s := range []Stock{
		mustCommon(t, "TEA", 0, 100),
		mustCommon(t, "POP", 8, 100),
		mustCommon(t, "ALE", 23, 60),
		mustPreferred(t, "GIN", 8, 0.02, 100),
		mustCommon(t, "JOE", 13, 250),
	} {
		if err := e.List(s); err != nil {
			t.Fatalf("List(%s) failed: %v", s.Symbol(), err)
		}
	}
	return e, clock
}

// record appends a trade with an explicit execution time or fails the test.
func record(t *testing.T, e *Exchange, symbol string, at time.Time, side Side, quantity, price int) {
	t.Helper()
	trade, err := NewTrade(symbol, at, side, Q(quantity), M(price, "GBP"))
	if err != nil {
		t.Fatalf("NewTrade(%q) failed: %v", symbol, err)
	}
	if err := e.Record(trade); err != nil {
		t.Fatalf("Record(%q) failed: %v", symbol, err)
	}
}
