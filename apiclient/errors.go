package apiclient

import (
	"github.com/pkg/errors"
)

// Sentinel causes for the failures callers branch on. Wrap with
// errors.Wrapf for context; test with the Is helpers below.
var (
	ErrNotFound  = errors.New("no such object")
	ErrDuplicate = errors.New("multiple objects match")
	ErrAuth      = errors.New("login failed")
)

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

func IsDuplicate(err error) bool {
	return errors.Cause(err) == ErrDuplicate
}

func IsAuth(err error) bool {
	return errors.Cause(err) == ErrAuth
}
