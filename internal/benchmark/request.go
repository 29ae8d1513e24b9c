package benchmark

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTargetNotImplemented is returned for targets that have no workload yet
	ErrTargetNotImplemented = errors.New("benchmark target not implemented")
	// ErrInvalidRequest wraps every request validation failure
	ErrInvalidRequest = errors.New("invalid benchmark request")
)

// Target is the container operation being measured
type Target int

const (
	TargetInsert Target = iota
	TargetErase
	TargetLookup
	TargetCustom
)

var targetNames = map[Target]string{
	TargetInsert: "insert",
	TargetErase:  "erase",
	TargetLookup: "lookup",
	TargetCustom: "custom",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("target(%d)", int(t))
}

func ParseTarget(s string) (Target, error) {
	for t, name := range targetNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown target %q", s)
}

// WorkloadType controls how the probed key sequence is built
type WorkloadType int

const (
	Shuffled WorkloadType = iota
	ShuffledWithMisses
	// ShuffledNonRecurrent currently behaves exactly like Shuffled
	ShuffledNonRecurrent
	AllUniqueNonShuffled
)

var workloadNames = map[WorkloadType]string{
	Shuffled:             "shuffled",
	ShuffledWithMisses:   "shuffled-with-misses",
	ShuffledNonRecurrent: "shuffled-non-recurrent",
	AllUniqueNonShuffled: "allunique-nonshuffled",
}

func (w WorkloadType) String() string {
	if name, ok := workloadNames[w]; ok {
		return name
	}
	return fmt.Sprintf("workload(%d)", int(w))
}

func ParseWorkloadType(s string) (WorkloadType, error) {
	for w, name := range workloadNames {
		if strings.EqualFold(s, name) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown workload type %q", s)
}

// WorkloadTypes lists every workload in declaration order
func WorkloadTypes() []WorkloadType {
	return []WorkloadType{Shuffled, ShuffledWithMisses, ShuffledNonRecurrent, AllUniqueNonShuffled}
}

func (w WorkloadType) shuffles() bool {
	return w == Shuffled || w == ShuffledWithMisses || w == ShuffledNonRecurrent
}

// Request describes one trial configuration
type Request struct {
	Target       Target
	Type         WorkloadType
	MissFraction float64 // only used by ShuffledWithMisses
	Trials       int     // confidence-interval trials
	Elements     int
	Iterations   uint64 // total Search calls per trial
}

// Validate checks the request before any data is generated
func (r Request) Validate() error {
	var errs []error
	if _, ok := targetNames[r.Target]; !ok {
		errs = append(errs, fmt.Errorf("unknown target %d", int(r.Target)))
	}
	if _, ok := workloadNames[r.Type]; !ok {
		errs = append(errs, fmt.Errorf("unknown workload type %d", int(r.Type)))
	}
	if r.MissFraction < 0 || r.MissFraction > 1 {
		errs = append(errs, fmt.Errorf("miss fraction %v outside [0, 1]", r.MissFraction))
	}
	if r.Trials < 1 {
		errs = append(errs, fmt.Errorf("trials must be at least 1, got %d", r.Trials))
	}
	if r.Elements < 0 {
		errs = append(errs, fmt.Errorf("elements must not be negative, got %d", r.Elements))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, errors.Join(errs...))
	}
	return nil
}
