package utils

import (
	"fmt"
)

// MakeError wraps err with formatted detail text while keeping it matchable
// through errors.Is/errors.As
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}
