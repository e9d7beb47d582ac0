package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/store"
)

// IAction is one unit of work run on the store's single Writer. Returning an
// error rolls the whole action back.
type IAction interface {
	Perform(ctx context.Context, writer *store.Writer) error
}
