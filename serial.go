package toolbelt

// Entry is one step of a Serial composition. A nil Entry is skipped.
type Entry interface {
	invoke()
}

type entryFunc func()

func (f entryFunc) invoke() { f() }

// Func wraps a callable without arguments.
func Func(f func()) Entry {
	if f == nil {
		return nil
	}
	return entryFunc(f)
}

// Call binds args to a variadic callable.
func Call[A any](f func(...A), args ...A) Entry {
	if f == nil {
		return nil
	}
	bound := append([]A(nil), args...)
	return entryFunc(func() { f(bound...) })
}

// Call1 binds a single argument.
func Call1[A any](f func(A), a A) Entry {
	if f == nil {
		return nil
	}
	return entryFunc(func() { f(a) })
}

// Call2 binds two arguments.
func Call2[A, B any](f func(A, B), a A, b B) Entry {
	if f == nil {
		return nil
	}
	return entryFunc(func() { f(a, b) })
}

// Serial returns a function running entries one after another in the given
// order, skipping nil ones. A panicking entry stops the run and the panic
// reaches the caller. The returned function can be called repeatedly.
func Serial(entries ...Entry) func() {
	steps := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			steps = append(steps, e)
		}
	}
	return func() {
		for _, e := range steps {
			e.invoke()
		}
	}
}
