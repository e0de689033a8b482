package usecase

import (
	"errors"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvoiceNotFound = errors.New("invoice not found")

	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrUnknownModule = errors.New("unknown module")

	ErrLeadAlreadyConverted = errors.New("lead already converted to a client")
	ErrQuoteAlreadyInvoiced = errors.New("quote already has an invoice")

	// ErrUnknownStatus is returned when a raw status is not part of the module.
	ErrUnknownStatus = entities.ErrUnknownStatus
	// ErrInvalidTransition is returned when the registry forbids a status change.
	// No write is attempted.
	ErrInvalidTransition = flow.ErrInvalidTransition
)
