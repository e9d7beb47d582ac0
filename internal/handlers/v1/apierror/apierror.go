// Package apierror maps service and ledger errors to huma status errors.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
)

// From wraps err in a huma error: 400 for rejected input, 404 for unknown ids
// and 500 for anything else. msg is used for the 500 case only.
func From(err error, msg string) error {
	switch {
	case ledger.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
