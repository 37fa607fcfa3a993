// Package exchange implements the trading core of the Global Beverage
// Corporation Exchange: a small in-memory stock market.
//
// The core functionalities include:
//   - Stock records: static descriptive data for each listed instrument
//     (symbol, common/preferred class, last dividend, fixed dividend rate,
//     par value), with the derived dividend-yield and price-earnings metrics.
//   - Trade ledger: an append-only, insertion-ordered record of executed
//     trades (quantity, buy/sell side, price, timestamp), immutable once
//     recorded.
//   - Windowed pricing: the volume-weighted average trade price over a
//     trailing time window (15 minutes by default).
//   - All-share index: the geometric mean of the latest trade price of every
//     listed stock.
//
// All monetary amounts are carried as exact decimals; computations whose
// mathematical definition does not hold (a price-earnings ratio with a zero
// dividend, a weighted price over an empty window) report ErrUndefined
// rather than producing a nonsensical number.
//
// The package performs no I/O. Time is read from an injectable clock so that
// every window calculation is reproducible under test.
package exchange
