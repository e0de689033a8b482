package usecase

import (
	"context"

	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// inlineTx runs the transaction body directly on the caller's context.
func inlineTx(ctrl *gomock.Controller) *mock_interfaces.MockITransactor {
	tx := mock_interfaces.NewMockITransactor(ctrl)
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

func uintPtr(v uint) *uint { return &v }
