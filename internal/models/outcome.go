package models

// OutcomeState is the state of the single forecast request a screen makes
type OutcomeState int

const (
	Loading OutcomeState = iota
	Success
	Failure
)

func (s OutcomeState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is Loading, Success with the current slice, or Failure with a user-facing reason
type Outcome struct {
	State  OutcomeState
	Slice  *TimeSlice
	Reason string
}

func LoadingOutcome() Outcome {
	return Outcome{State: Loading}
}

func SuccessOutcome(slice *TimeSlice) Outcome {
	return Outcome{State: Success, Slice: slice}
}

func FailureOutcome(reason string) Outcome {
	return Outcome{State: Failure, Reason: reason}
}
