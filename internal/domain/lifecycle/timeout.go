// Package lifecycle holds shared timeouts for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 30 * time.Second
