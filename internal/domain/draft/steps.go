package draft

import (
	"encoding/json"
	"fmt"
)

// Step is one of the four fixed wizard stages a draft is assembled through.
type Step int

const (
	StepCompany Step = iota
	StepClient
	StepProducts
	StepPreview
)

func (s Step) String() string {
	names := [...]string{"company", "client", "products", "preview"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseStep converts a step name to its Step value.
func ParseStep(name string) (Step, error) {
	switch name {
	case "company":
		return StepCompany, nil
	case "client":
		return StepClient, nil
	case "products":
		return StepProducts, nil
	case "preview":
		return StepPreview, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// guardLocked checks the completeness rule for leaving the given step
// forward. A nil return means the step is complete.
func (e *Engine) guardLocked(s Step) error {
	switch s {
	case StepCompany:
		if e.draft.Issuer.Name == "" || e.draft.Issuer.TaxID == "" {
			return ErrIssuerIncomplete
		}
	case StepClient:
		if e.draft.Client.Name == "" || e.draft.Client.TaxID == "" {
			return ErrClientIncomplete
		}
	case StepProducts:
		if len(e.draft.LineItems) == 0 {
			return ErrNoLineItems
		}
	}
	return nil
}

// Next advances the wizard one step forward. It is guarded by the current
// step's completeness rule: on failure the step does not change and the
// error names the rule that blocked it. From the last step it is a no-op.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.step == StepPreview {
		return nil
	}
	if err := e.guardLocked(e.step); err != nil {
		return err
	}
	e.step++
	return nil
}

// Previous moves the wizard one step back. It is unconditional and a no-op
// at the first step.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.step > StepCompany {
		e.step--
	}
}

// GoToStep jumps directly to the target step. Jumping backward is always
// unconditional. Jumping forward applies the completeness guard of every
// step that would be skipped over, current step included; the first failing
// rule is reported and the step does not change.
func (e *Engine) GoToStep(target Step) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if target < StepCompany || target > StepPreview {
		return fmt.Errorf("%w: %d", ErrUnknownStep, target)
	}
	if target <= e.step {
		e.step = target
		return nil
	}
	for s := e.step; s < target; s++ {
		if err := e.guardLocked(s); err != nil {
			return err
		}
	}
	e.step = target
	return nil
}
