package domain

import "fmt"

// TerminationKind classifies why a paginated fetch stopped.
type TerminationKind int

const (
	Exhausted TerminationKind = iota
	NotFound
	RateLimited
	RemoteError
	TimedOut
	TransportError
)

func (k TerminationKind) String() string {
	switch k {
	case Exhausted:
		return "exhausted"
	case NotFound:
		return "not_found"
	case RateLimited:
		return "rate_limited"
	case RemoteError:
		return "remote_error"
	case TimedOut:
		return "timed_out"
	case TransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("TerminationKind(%d)", int(k))
	}
}

// Termination is the reason a fetch loop ended. StatusCode is set for RemoteError,
// Detail for TransportError.
type Termination struct {
	Kind       TerminationKind
	StatusCode int
	Detail     string
}

// ExhaustedTermination marks a fetch that reached an empty page.
func ExhaustedTermination() Termination {
	return Termination{Kind: Exhausted}
}

// NotFoundTermination marks an unknown account.
func NotFoundTermination() Termination {
	return Termination{Kind: NotFound}
}

// RateLimitedTermination marks a fetch refused by the rate limiter.
func RateLimitedTermination() Termination {
	return Termination{Kind: RateLimited}
}

// TimedOutTermination marks a page request that exceeded the client timeout.
func TimedOutTermination() Termination {
	return Termination{Kind: TimedOut}
}

// RemoteErrorTermination marks any other non-2xx response.
func RemoteErrorTermination(code int) Termination {
	return Termination{Kind: RemoteError, StatusCode: code}
}

// TransportErrorTermination marks a request that failed without a usable response.
func TransportErrorTermination(detail string) Termination {
	return Termination{Kind: TransportError, Detail: detail}
}

// Complete reports whether the collection was walked to its end.
func (t Termination) Complete() bool {
	return t.Kind == Exhausted
}

// Err returns nil for Exhausted and otherwise an error wrapping one of the
// sentinel errors of this package.
func (t Termination) Err() error {
	switch t.Kind {
	case Exhausted:
		return nil
	case NotFound:
		return ErrNotFound
	case RateLimited:
		return ErrRateLimited
	case RemoteError:
		return fmt.Errorf("%w: status %d", ErrRemote, t.StatusCode)
	case TimedOut:
		return ErrTimedOut
	default:
		return fmt.Errorf("%w: %s", ErrTransport, t.Detail)
	}
}

// Message is the notice shown to the user when the fetch did not complete.
func (t Termination) Message() string {
	switch t.Kind {
	case Exhausted:
		return ""
	case NotFound:
		return "USER NOT FOUND!"
	case RateLimited:
		return "RATE LIMIT EXCEEDED!"
	case RemoteError:
		return fmt.Sprintf("ERROR: %d", t.StatusCode)
	case TimedOut:
		return "REQUEST TIMED OUT"
	default:
		return fmt.Sprintf("REQUEST FAILED: %s", t.Detail)
	}
}

// String is a compact form used in logs, e.g. remote_error(502).
func (t Termination) String() string {
	switch t.Kind {
	case RemoteError:
		return fmt.Sprintf("%s(%d)", t.Kind, t.StatusCode)
	case TransportError:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Detail)
	default:
		return t.Kind.String()
	}
}
