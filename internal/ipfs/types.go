// Package ipfs talks to the content-addressed store: uploads through the
// pinning API, retrievals through an ordered list of public gateways.
package ipfs

import "time"

type (
	// Metrics records metrics for content-store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveGatewayAttempt(gateway string, err error)
	}
)
