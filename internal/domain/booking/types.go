package booking

import (
	"strings"
	"time"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// State is the time/status bucket used to filter booking listings
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState accepts the token in any letter case; an empty token means ALL.
func ParseState(token string) (State, error) {
	if strings.TrimSpace(token) == "" {
		return StateAll, nil
	}
	s := State(strings.ToUpper(strings.TrimSpace(token)))
	switch s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", &UnknownStateError{Token: token}
	}
}

// Includes reports whether a booking with the given period and status falls into the bucket at now
func (s State) Includes(start, end time.Time, status Status, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return !now.Before(start) && !now.After(end)
	case StatePast:
		return !end.After(now)
	case StateFuture:
		return !start.Before(now)
	case StateWaiting:
		return status == StatusWaiting
	case StateRejected:
		return status == StatusRejected
	default:
		return false
	}
}

type UnknownStateError struct {
	Token string
}

func (e *UnknownStateError) Error() string {
	return "Unknown state: " + e.Token
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// Role selects which side of the booking the actor is listed from
type Role string

const (
	RoleBooker Role = "BOOKER"
	RoleOwner  Role = "OWNER"
)

type DateRule string

const (
	// DateRuleStrict also rejects periods that start or end before now
	DateRuleStrict DateRule = "strict"
	DateRuleLoose  DateRule = "loose"
)

func ParseDateRule(s string) DateRule {
	if DateRule(strings.ToLower(s)) == DateRuleLoose {
		return DateRuleLoose
	}
	return DateRuleStrict
}
