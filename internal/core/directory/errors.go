package directory

import "errors"

var (
	ErrInvalidID        = errors.New("directory: invalid id")
	ErrEmployeeNotFound = errors.New("directory: employee not found")
	ErrStoreNotFound    = errors.New("directory: store not found")
	ErrZoneNotFound     = errors.New("directory: zone not found")
	ErrProfileNotFound  = errors.New("directory: profile not found")
	ErrEmployeeInactive = errors.New("directory: employee is not active")
	ErrStoreChanged     = errors.New("directory: employee store changed since the request was prepared; no change applied")
	ErrSameStore        = errors.New("directory: employee already belongs to the destination store")
	ErrPermissionDenied = errors.New("directory: only HR may correct an employee's store")
)
