package quarry

import "fmt"

// ErrConfig reports an invalid chunker configuration. It is returned at
// construction time: a size/overlap pair that cannot guarantee forward
// progress must fail before any splitting happens, not stall during it.
type ErrConfig struct {
	Field  string
	Reason string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("chunker config: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) error {
	return &ErrConfig{Field: field, Reason: fmt.Sprintf(format, args...)}
}
