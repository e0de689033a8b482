package usecase

import "voltflow_crm/internal/domain/flow"

// checkStatusChange reports whether moving from -> to needs a write. Writing the
// current status again is accepted and needs none.
func checkStatusChange[S flow.Status](from, to S) (bool, error) {
	if from == to {
		return false, nil
	}
	if err := flow.ValidateTransition(from, to); err != nil {
		return false, err
	}
	return true, nil
}
