package marketerrors

import "errors"

// Repository-level errors
var (
	ErrLotNotFound  = errors.New("auction lot not found")
	ErrCoinNotFound = errors.New("coin not found")
)

// business logic errors
var (
	ErrInvalidBid    = errors.New("invalid bid")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrLotExpired    = errors.New("auction has ended")
	ErrInvalidLot    = errors.New("invalid auction lot")
	ErrInvalidCoin   = errors.New("invalid coin listing")
	ErrInvalidAction = errors.New("unrecognized action")
)

// auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
