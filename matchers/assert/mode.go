package assert

import "sync/atomic"

// productionMode gates expensive failure diagnostics. In production mode
// stack traces are omitted from failure logs.
var productionMode atomic.Bool

// SetProductionMode enables or disables production mode. Call during
// application startup; safe for concurrent use.
func SetProductionMode(enabled bool) {
	productionMode.Store(enabled)
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	return productionMode.Load()
}
