package guard

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestProtect_PassesThroughResult(t *testing.T) {
	err := Protect(context.Background(), nil, "region", func() error {
		return nil
	})
	if err != nil {
		t.Errorf("Protect() error = %v, want nil", err)
	}

	boom := errors.New("boom")
	err = Protect(context.Background(), nil, "region", func() error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Protect() error = %v, want boom", err)
	}
}

func TestProtect_ContainsPanic(t *testing.T) {
	err := Protect(context.Background(), nil, "attach", func() error {
		panic("host memory went away")
	})

	var fault *ContainedFault
	if !errors.As(err, &fault) {
		t.Fatalf("error = %v, want *ContainedFault", err)
	}
	if fault.Region != "attach" {
		t.Errorf("region = %q, want attach", fault.Region)
	}
	if fault.Value != "host memory went away" {
		t.Errorf("value = %v", fault.Value)
	}
	if len(fault.Stack) == 0 {
		t.Error("stack should be captured")
	}
	if !strings.Contains(fault.Error(), "attach") {
		t.Errorf("Error() = %q, should name the region", fault.Error())
	}
}

func TestProtect_ContainsNonStringPanic(t *testing.T) {
	err := Protect(context.Background(), nil, "region", func() error {
		var steps []int
		_ = steps[3] // index out of range
		return nil
	})

	var fault *ContainedFault
	if !errors.As(err, &fault) {
		t.Fatalf("error = %v, want *ContainedFault", err)
	}
}

func TestLatch_OneWayTrip(t *testing.T) {
	var latch Latch

	if latch.Tripped() {
		t.Error("new latch should not be tripped")
	}

	latch.Trip()
	if !latch.Tripped() {
		t.Error("latch should be tripped")
	}

	latch.Trip()
	if !latch.Tripped() {
		t.Error("trip is one-way")
	}
}
