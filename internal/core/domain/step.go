package domain

// StepResult is the state reported to the caller after each incremental
// Process call. The session itself stays usable after every result
// except StepErr.
type StepResult int

const (
	// StepDone is terminal: the codec reached end-of-stream and consumed
	// all input the caller intended to feed.
	StepDone StepResult = iota + 1

	// StepOK means the call consumed all available input; the caller
	// should supply more (or set finish) and call again.
	StepOK

	// StepOutputFull means the output slice was exhausted before the
	// input was; the caller must drain or replace the output slice and
	// call again with the remaining input.
	StepOutputFull

	// StepErr is unrecoverable: the codec reported corruption or the
	// lifetime input/output totals tripped the bomb detector. The caller
	// is expected to Close the session; it is never freed automatically.
	StepErr
)

// String returns the string representation of the step result.
func (s StepResult) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepOK:
		return "ok"
	case StepOutputFull:
		return "output-full"
	case StepErr:
		return "error"
	default:
		return "invalid"
	}
}
