package bootstrap

// Report is the cumulative result of one orchestration pass.
type Report struct {
	outcomes []StepOutcome
}

// Outcomes returns the per-step outcomes in execution order. Steps after
// an aborted walk do not appear.
func (r Report) Outcomes() []StepOutcome {
	return r.outcomes
}

// FatalFailure returns the outcome of the fatal step that aborted the
// walk, or nil if none occurred.
func (r Report) FatalFailure() *StepOutcome {
	for i := range r.outcomes {
		if r.outcomes[i].FatalFailure() {
			return &r.outcomes[i]
		}
	}
	return nil
}

// Ready reports whether the pass completed without a fatal failure.
func (r Report) Ready() bool {
	return r.FatalFailure() == nil
}

// Counts returns how many steps succeeded, were skipped, and failed.
func (r Report) Counts() (succeeded, skipped, failed int) {
	for _, o := range r.outcomes {
		switch o.Status() {
		case StatusSucceeded:
			succeeded++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return succeeded, skipped, failed
}
