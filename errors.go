package exchange

import "errors"

var (
	// ErrValidation reports input that cannot form a valid stock or trade.
	ErrValidation = errors.New("invalid input")
	// ErrUndefined reports a computation whose mathematical definition does
	// not hold for the given data, such as a division by a zero dividend or
	// an average over an empty set of trades.
	ErrUndefined = errors.New("undefined result")
	// ErrUnknownStock reports a symbol that is not listed on the exchange.
	ErrUnknownStock = errors.New("unknown stock")
)
