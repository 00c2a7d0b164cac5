package usecase

import (
	"errors"
	"fmt"

	"assessoria_licitacoes/internal/domain/entities"
)

var (
	ErrBidNotFound       = errors.New("licitacao not found")
	ErrInvalidBidID      = errors.New("invalid licitacao id")
	ErrItemNotFound      = errors.New("proposal item not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPersistence       = errors.New("persistence failure")
	ErrDocumentsNotWired = errors.New("document emission not configured")
	ErrDocumentStorage   = errors.New("document storage failure")
)

// ValidationError is a user-correctable failure. It blocks the action and mutates nothing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TransitionError reports an operation attempted from a status that does not allow it.
type TransitionError struct {
	Operation string
	From      entities.BidStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot %s from %s", e.Operation, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func transition(op string, from entities.BidStatus) error {
	return &TransitionError{Operation: op, From: from}
}

func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
