package model

import "errors"

var (
	ErrEmptyCart       = errors.New("cannot initiate checkout with an empty cart")
	ErrNoPending       = errors.New("no pending checkout found")
	ErrPendingExpired  = errors.New("pending checkout has expired")
	ErrInvalidCallback = errors.New("callback payload could not be decoded")
	ErrBadSignature    = errors.New("callback signature verification failed")
	ErrNotPaid         = errors.New("payment is not in a confirmable state")
	ErrBackend         = errors.New("backend request failed")
)
