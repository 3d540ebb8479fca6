package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidArgument = goerr.New("invalid argument")
	ErrNetwork         = goerr.New("network request failed")
	ErrConfiguration   = goerr.New("configuration error")
)
