package rpc

import (
	"errors"
	"time"
)

// ServiceTimeout bounds how long the driver waits for an unavailable
// perception or manipulation service before aborting (spec §7 "Service
// unavailable — abort after a 5-second wait").
const ServiceTimeout = 5 * time.Second

// ErrServiceUnavailable is returned by a PerceptionClient/ManipulationClient
// implementation when the underlying service does not respond within
// ServiceTimeout.
var ErrServiceUnavailable = errors.New("rpc: service unavailable")
