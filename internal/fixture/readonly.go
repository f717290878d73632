package fixture

import (
	"fmt"

	"github.com/meatsuits/bountyboard/pkg/cerr"
)

// PersistenceHint tells callers how to get a writable backend.
const PersistenceHint = "Configure a persistent backend to enable create operations; the fixture store is read-only"

// ErrReadOnly builds the error every write against the fixture returns.
func ErrReadOnly(op string) error {
	return cerr.NewErrorWithData(
		cerr.Unavailable,
		fmt.Sprintf("Persistent backend not connected - %s operations disabled in fixture mode", op),
		nil,
		map[string]string{"hint": PersistenceHint},
	)
}
