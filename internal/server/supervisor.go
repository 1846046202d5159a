package server

import (
	"time"

	"github.com/thejerf/suture/v4"

	"bookcatalog/internal/logging"
)

// NewSupervisor returns the root supervisor. Restarts and failures are
// reported through the process logger.
func NewSupervisor(name string, shutdownTimeout time.Duration) *suture.Supervisor {
	return suture.New(name, suture.Spec{
		EventHook:        logEvent,
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		Timeout:          shutdownTimeout,
	})
}

func logEvent(e suture.Event) {
	logging.Warn().Fields(e.Map()).Msg(e.String())
}
