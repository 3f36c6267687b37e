package httpserver

import "time"

// ShutdownTimeout bounds graceful shutdown, covering in-flight requests and the lookup
// history flush that follows them.
var ShutdownTimeout = 15 * time.Second
