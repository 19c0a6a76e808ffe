package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) should be visible via Has")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action should not be reported")
	}

	f.Set(ActionPause)
	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("frame should be reusable after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionPause, "Pause"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventJump, EventSpawn}}

	if !r.Has(EventJump) || !r.Has(EventSpawn) {
		t.Error("Has should find recorded events")
	}
	if r.Has(EventCollision) {
		t.Error("Has should not report missing events")
	}
	if EventCollision.String() != "collision" {
		t.Errorf("EventCollision.String() = %q", EventCollision.String())
	}
}
