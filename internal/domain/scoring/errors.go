package scoring

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrStructuralAccess marks a virtual-user context without a writable vars path.
	ErrStructuralAccess = errors.New("structural access failed")

	ErrNilContext = fmt.Errorf("%w: virtual-user context is nil", ErrStructuralAccess)
	ErrNilVars    = fmt.Errorf("%w: context vars are nil", ErrStructuralAccess)
)
