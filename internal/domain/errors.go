package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrNetwork       = errors.New("network error")
	ErrParse         = errors.New("parse error")
	ErrPersistence   = errors.New("persistence error")
)

var ErrHeaderNotFound = fmt.Errorf("%w: month header row not found", ErrParse)

var ErrExecutionNotFound = errors.New("execution not found")
