package toolbelt

import (
	"fmt"
	"runtime/debug"

	"github.com/birdayz/toolbelt/pkg/log"
)

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// TryCatch runs run and contains its failure. A returned error or a
// recovered panic is logged and passed to onErr, which may be nil. Panics
// carrying an error are passed on as that exact error, other panic values
// as a *PanicError. A panic(nil), which recovers as nil under this module's
// Go version, is reported as a *PanicError with a nil Value. TryCatch itself
// never panics because of run.
func TryCatch(run func() error, onErr func(error), opts ...Option) {
	o := newOptions(opts)

	err := guard(run)
	if err == nil {
		return
	}

	if !o.logSet {
		o.log = log.Default()
	}
	o.log.Error(err, "callback failed")
	if onErr != nil {
		onErr(err)
	}
}

func guard(run func() error) (err error) {
	returned := false
	defer func() {
		r := recover()
		if r == nil {
			if !returned {
				err = &PanicError{Stack: debug.Stack()}
			}
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = &PanicError{Value: r, Stack: debug.Stack()}
	}()
	err = run()
	returned = true
	return err
}
