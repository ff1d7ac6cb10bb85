package delegation

import "errors"

var (
	ErrInvalidID          = errors.New("delegation: invalid id")
	ErrInvalidEmployeeID  = errors.New("delegation: employee id is required")
	ErrInvalidStoreID     = errors.New("delegation: destination store id is required")
	ErrInvalidPeriod      = errors.New("delegation: end date must be after start date")
	ErrStartInPast        = errors.New("delegation: start date must not be in the past")
	ErrTooShort           = errors.New("delegation: period is shorter than the minimum allowed")
	ErrTooLong            = errors.New("delegation: period exceeds the maximum allowed")
	ErrSelfAssignment     = errors.New("delegation: employee already works at the destination store")
	ErrSameStore          = errors.New("delegation: source and destination stores must differ")
	ErrStaleEmployee      = errors.New("delegation: employee's current store does not match the request")
	ErrEmployeeInactive   = errors.New("delegation: employee is not active")
	ErrPermissionDenied   = errors.New("delegation: actor is not permitted to act on this store or zone")
	ErrOverlap            = errors.New("delegation: employee already has an active delegation")
	ErrTransferInProgress = errors.New("delegation: employee has a transfer in progress")
	ErrAlreadyFinished    = errors.New("delegation: delegation has already ended")
	ErrExtensionLimit     = errors.New("delegation: extension limit reached")
	ErrInvalidExtension   = errors.New("delegation: new end date must extend the current period")
	ErrNotFound           = errors.New("delegation: not found")
)
