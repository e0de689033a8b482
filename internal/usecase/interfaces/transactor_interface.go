package interfaces

import "context"

//go:generate mockgen -source=transactor_interface.go -destination=mocks/mock_transactor_interface.go -package=mock_interfaces

// ITransactor runs fn inside one store transaction. Repositories called with the
// ctx handed to fn join that transaction. Returning an error rolls back.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
