package chain

import (
	"fmt"
	"strings"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// classify maps raw backend errors onto the pipeline failure taxonomy.
// Anything unrecognized is treated as transient: the caller retries the
// whole submit-and-wait as a fresh attempt, never by mutating the same
// submission.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("chain %s: %w: %s", op, model.ErrInsufficientFunds, err)
	case strings.Contains(msg, "execution reverted"), strings.Contains(msg, "always failing transaction"):
		// storeRecord has a single revert path: the duplicate guard.
		return fmt.Errorf("chain %s: %w: %s", op, model.ErrDuplicateRecord, err)
	default:
		return &model.TransientChainError{Op: op, Err: err}
	}
}
