package transfer

import "errors"

var (
	ErrInvalidID         = errors.New("transfer: invalid id")
	ErrInvalidEmployeeID = errors.New("transfer: employee id is required")
	ErrInvalidStoreID    = errors.New("transfer: destination store id is required")
	ErrInvalidDate       = errors.New("transfer: transfer date is required")
	ErrDateInPast        = errors.New("transfer: transfer date must not be in the past")
	ErrDateTooFar        = errors.New("transfer: transfer date is too far in the future")
	ErrSelfAssignment    = errors.New("transfer: employee already works at the destination store")
	ErrSameStore         = errors.New("transfer: source and destination stores must differ")
	ErrStaleEmployee     = errors.New("transfer: employee's current store does not match the request")
	ErrEmployeeInactive  = errors.New("transfer: employee is not active")
	ErrPermissionDenied  = errors.New("transfer: actor is not permitted to act on this store or zone")
	ErrSelfApproval      = errors.New("transfer: initiator cannot approve or reject their own request")
	ErrAlreadyInProgress = errors.New("transfer: employee already has a transfer in progress")
	ErrDelegationActive  = errors.New("transfer: employee has an active delegation and cannot be transferred")
	ErrNotPending        = errors.New("transfer: transfer is not pending")
	ErrNotApproved       = errors.New("transfer: transfer is not approved")
	ErrNotDue            = errors.New("transfer: transfer date has not been reached")
	ErrNotInitiator      = errors.New("transfer: only the initiator can cancel a pending transfer")
	ErrStoreChanged      = errors.New("transfer: employee store changed since the transfer was created; no change applied")
	ErrNotFound          = errors.New("transfer: not found")
)
