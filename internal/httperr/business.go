package httperr

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed booking-draft field. The flow
// does not advance; the caller fixes the field and retries.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s not selected", e.Field)
}

func ErrValidation(field string) error {
	return ValidationError{Field: field}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ConflictError means the chosen slot stopped being free between display and
// confirm. Nothing was written; the caller picks another slot.
type ConflictError struct {
	Slot   string
	Reason string
}

func (e ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("slot %s unavailable: %s", e.Slot, e.Reason)
	}
	return fmt.Sprintf("slot %s unavailable", e.Slot)
}

func ErrConflict(slot, reason string) error {
	return ConflictError{Slot: slot, Reason: reason}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// NotFoundError means a referenced record does not exist in the store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func ErrNotFound(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// BusinessError carries a stable machine-readable code for domain rule
// violations (invalid state transitions, inactive catalog entries, ...).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// StoreError wraps an underlying persistence failure. The core never retries;
// that belongs to the storage collaborator.
type StoreError struct {
	Err error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("store: %v", e.Err)
}

func (e StoreError) Unwrap() error {
	return e.Err
}

func WrapStore(err error) error {
	if err == nil {
		return nil
	}
	return StoreError{Err: err}
}

func IsStore(err error) bool {
	var se StoreError
	return errors.As(err, &se)
}
