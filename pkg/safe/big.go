package safe

import (
	"fmt"
	"math/big"
)

// Uint64FromBig converts a big integer to uint64 with range validation.
// A nil value converts to zero.
func Uint64FromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v.String())
	}
	return v.Uint64(), nil
}

// Int64FromBig converts a big integer to int64 with range validation.
// A nil value converts to zero.
func Int64FromBig(v *big.Int) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v.String())
	}
	return v.Int64(), nil
}
