package command

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

var (
	ErrDuplicateRegistration = errors.New("duplicate command registration")
	ErrInvalidArgument       = errors.New("invalid argument")
)

// DuplicateError reports a real command that is already registered.
type DuplicateError struct {
	Command  string
	Handler  string
	Existing string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("command %q: cannot register %s, already registered to %s", e.Command, e.Handler, e.Existing)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return "<unknown>"
}
