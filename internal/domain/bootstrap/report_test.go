package bootstrap

import (
	"errors"
	"testing"
)

func TestReport_ReadyWithoutFatal(t *testing.T) {
	report := Report{outcomes: []StepOutcome{
		NewStepOutcome(MustNewStepID("one"), SeverityFatal, StatusSucceeded, nil),
		NewStepOutcome(MustNewStepID("two"), SeveritySoft, StatusFailed, errors.New("boom")),
		NewStepOutcome(MustNewStepID("three"), SeveritySoft, StatusSkipped, nil),
	}}

	if !report.Ready() {
		t.Error("soft failure only should be ready")
	}
	if report.FatalFailure() != nil {
		t.Error("FatalFailure() should be nil")
	}

	succeeded, skipped, failed := report.Counts()
	if succeeded != 1 || skipped != 1 || failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", succeeded, skipped, failed)
	}
}

func TestReport_FatalFailure(t *testing.T) {
	boom := errors.New("boom")
	report := Report{outcomes: []StepOutcome{
		NewStepOutcome(MustNewStepID("one"), SeveritySoft, StatusSucceeded, nil),
		NewStepOutcome(MustNewStepID("two"), SeverityFatal, StatusFailed, boom),
	}}

	if report.Ready() {
		t.Error("fatal failure should not be ready")
	}

	fatal := report.FatalFailure()
	if fatal == nil {
		t.Fatal("FatalFailure() = nil")
	}
	if !errors.Is(fatal.Error(), boom) {
		t.Errorf("fatal error = %v, want boom", fatal.Error())
	}
}

func TestStepOutcome_Accessors(t *testing.T) {
	boom := errors.New("boom")
	outcome := NewStepOutcome(MustNewStepID("one"), SeverityFatal, StatusFailed, boom)

	if !outcome.Failed() {
		t.Error("Failed() = false")
	}
	if !outcome.FatalFailure() {
		t.Error("FatalFailure() = false")
	}
	if outcome.Severity() != SeverityFatal {
		t.Errorf("Severity() = %v", outcome.Severity())
	}

	soft := NewStepOutcome(MustNewStepID("two"), SeveritySoft, StatusFailed, boom)
	if soft.FatalFailure() {
		t.Error("soft failure should not be fatal")
	}
}
