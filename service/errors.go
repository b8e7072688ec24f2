package service

import (
	"errors"
	"fmt"
)

// ErrInsufficientRevenueShare is returned when the monthly revenue share can
// never amortize the investor's required return.
var ErrInsufficientRevenueShare = errors.New("月分成收入不足以覆盖投资收益要求")

// ErrNoPayback is returned when the brand's monthly profit is not positive.
var ErrNoPayback = errors.New("月净利润不为正，无法回本")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
