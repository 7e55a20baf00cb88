// Package timeouts holds the shutdown bounds shared by entry points.
package timeouts

import "time"

// Shutdown limits how long telemetry may spend flushing on exit.
const Shutdown = 5 * time.Second
