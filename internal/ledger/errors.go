package ledger

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrMissingAccount    = errors.New("missing account reference")
	ErrSameAccount       = errors.New("transfer source and destination must differ")
	ErrMissingCategory   = errors.New("category is required")
	ErrUnknownType       = errors.New("unknown transaction type")
	ErrAccountTypeInUse  = errors.New("account type is used by existing accounts")
	ErrDuplicateLabel    = errors.New("label already exists")
	ErrEmptyLabel        = errors.New("label must not be empty")
	ErrUnknownLabel      = errors.New("label does not exist")
)

var validationErrors = []error{
	ErrEmptyName,
	ErrNonPositiveAmount,
	ErrMissingAccount,
	ErrSameAccount,
	ErrMissingCategory,
	ErrUnknownType,
	ErrAccountTypeInUse,
	ErrDuplicateLabel,
	ErrEmptyLabel,
	ErrUnknownLabel,
}

// IsValidation reports whether err was caused by invalid caller input.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
