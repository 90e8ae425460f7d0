package cmd

import (
	"fortio.org/safecast"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// toUint32 converts a flag value, rejecting negatives and overflow.
func toUint32(v int64) (uint32, error) {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, strxerror.Wrap(err, "flag value out of range").
			WithCode(strxerror.CodeInvalidInput).
			WithDetail("value", v)
	}
	return n, nil
}
