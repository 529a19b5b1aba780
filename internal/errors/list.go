package errors

import "go.uber.org/multierr"

// List collects independent failures without stopping at the first one.
// The zero value is ready to use.
type List struct {
	err error
}

// Add records err. Nil errors are ignored.
func (l *List) Add(err error) {
	l.err = multierr.Append(l.err, err)
}

// Len returns the number of recorded errors.
func (l *List) Len() int {
	return len(multierr.Errors(l.err))
}

// Errors returns the recorded errors in the order they were added.
func (l *List) Errors() []error {
	return multierr.Errors(l.err)
}

// Err returns the combined error, or nil if nothing was recorded.
func (l *List) Err() error {
	return l.err
}

// Split flattens an error produced by List.Err back into its parts.
func Split(err error) []error {
	return multierr.Errors(err)
}
