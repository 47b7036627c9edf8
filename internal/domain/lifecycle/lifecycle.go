// Package lifecycle holds shared constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook (server shutdown,
// database ping) may take before it is abandoned.
const DefaultTimeout = 10 * time.Second
