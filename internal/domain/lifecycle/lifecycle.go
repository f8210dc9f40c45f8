// Package lifecycle holds shared timings for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to shut down.
const DefaultTimeout = 10 * time.Second
