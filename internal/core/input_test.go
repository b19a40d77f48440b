package core

import (
	"slices"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionChargeStart)
	f.Set(ActionPause)
	if !f.Has(ActionChargeStart) || f.Has(ActionChargeRelease) {
		t.Errorf("unexpected actions: %v", f.Actions())
	}
	if got := f.Actions(); !slices.Equal(got, []Action{ActionChargeStart, ActionPause}) {
		t.Errorf("Actions() = %v", got)
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
	if !copied.Has(ActionChargeStart) {
		t.Error("copies must not share state")
	}
}

func TestInputFrameIgnoresInvalid(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(99))
	f.Set(Action(-1))
	if !f.Empty() {
		t.Errorf("invalid actions were latched: %v", f.Actions())
	}
	if f.Has(Action(99)) {
		t.Error("Has should be false for unknown actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionChargeRelease.String() != "ChargeRelease" {
		t.Errorf("unexpected name %q", ActionChargeRelease.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
	if EventCoin.String() != "coin" {
		t.Errorf("unexpected event name %q", EventCoin.String())
	}
}
