package kata

import "fmt"

// Status tells whether an exercise has a reference solution.
type Status int

const (
	// Solved exercises are fully implemented.
	Solved Status = iota
	// Stub exercises keep at least one branch returning ErrNotImplemented.
	Stub
)

// String returns "solved" or "stub".
func (s Status) String() string {
	if s == Stub {
		return "stub"
	}

	return "solved"
}

// Exercise is one entry of a Catalog.
//
// Demo runs the sample invocation and renders its result; it replaces the
// print-on-import smoke check of a classic exercise file.
type Exercise struct {
	Name    string
	Summary string
	Status  Status
	Demo    func() (string, error)
}

// Verdict classifies the result of running a demo.
type Verdict int

const (
	// Passed means the demo returned without error.
	Passed Verdict = iota
	// Failed means the demo returned an error other than ErrNotImplemented.
	Failed
	// Unimplemented means the demo hit a path returning ErrNotImplemented.
	Unimplemented
)

// String returns the lower-case verdict name.
func (v Verdict) String() string {
	switch v {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Unimplemented:
		return "unimplemented"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Outcome is the result of Run.
type Outcome struct {
	Name    string
	Verdict Verdict
	Output  string
	Err     error
}

// String renders "name: verdict: output" or "name: verdict: err".
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %s: %v", o.Name, o.Verdict, o.Err)
	}

	return fmt.Sprintf("%s: %s: %s", o.Name, o.Verdict, o.Output)
}
