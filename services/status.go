// Package services is the service-lifecycle control plane: controllers that
// start, stop, and query the rabbitmq broker and the supervisord-managed
// celery worker pool, and an orchestrator that sequences them.
package services

import (
	"fmt"
	"strconv"
)

// Labels used when printing and reporting status; they carry no behavior.
const (
	BrokerName     = "rabbitmq"
	WorkerPoolName = "celery"
)

// StatusCode is the canonical two-valued lifecycle state shared by all
// supervised services. UNKNOWN is the zero value and is never handed to a
// caller except alongside an UnknownStatusError.
type StatusCode int

const (
	UNKNOWN StatusCode = iota
	RUNNING
	STOPPED
)

func (s StatusCode) String() string {
	switch s {
	case RUNNING:
		return "RUNNING"
	case STOPPED:
		return "STOPPED"
	}
	return "UNKNOWN"
}

// UnknownStatusError reports a status signal this control plane does not
// understand. It is fatal and never retried: guessing a status risks
// starting a duplicate instance or leaving a crashed service unmonitored.
type UnknownStatusError struct {
	Service string
	Value   string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: unknown status %s", e.Service, e.Value)
}

// BrokerStatusFromExitCode is the total mapping from rabbitmqctl status exit
// codes to a StatusCode. 2 and 69 are rabbitmq's documented "not running"
// codes; anything outside the known set is an error, never a default.
func BrokerStatusFromExitCode(code int) (StatusCode, error) {
	switch code {
	case 0:
		return RUNNING, nil
	case 2, 69:
		return STOPPED, nil
	}
	return UNKNOWN, &UnknownStatusError{Service: BrokerName, Value: strconv.Itoa(code)}
}

// WorkerStateFromToken is the total mapping from supervisord process-state
// tokens to a StatusCode. STARTING is optimistically reported as RUNNING so
// callers need not poll a service that is already on its way up; FATAL is
// reported as STOPPED so callers will attempt a restart.
func WorkerStateFromToken(token string) (StatusCode, error) {
	switch token {
	case "RUNNING", "STARTING":
		return RUNNING, nil
	case "STOPPED", "FATAL":
		return STOPPED, nil
	}
	return UNKNOWN, &UnknownStatusError{Service: WorkerPoolName, Value: token}
}
