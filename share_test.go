package ternary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShareGroupPropagates(t *testing.T) {
	g := NewShareGroup()
	unit := newTestAxes(t, WithShareGroup(g))
	pct := newTestAxes(t, WithScale(100), WithShareGroup(g))

	if err := unit.SetMin(0.2, 0.1, 0.3); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(unit.Limits().Scaled(100), pct.Limits(), approx); diff != "" {
		t.Errorf("percent axes did not follow (-want +got):\n%s", diff)
	}

	// Gestures on either member propagate too.
	center := mustProject(t, pct, Tri(40, 30, 30))
	if err := pct.Zoom(1.5, center); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(pct.Limits().Scaled(0.01), unit.Limits(), approx); diff != "" {
		t.Errorf("unit axes did not follow the zoom (-want +got):\n%s", diff)
	}
	if got := len(g.Members()); got != 2 {
		t.Errorf("group has %d members, want 2", got)
	}
}

func TestShareGroupJoinAdoptsLimits(t *testing.T) {
	g := NewShareGroup()
	first := newTestAxes(t, WithShareGroup(g))
	if err := first.SetBounds(0.1, 0.7, 0.05, 0.6, 0.2, 0.8); err != nil {
		t.Fatal(err)
	}
	late := newTestAxes(t, WithScale(-1), WithShareGroup(g))
	if diff := cmp.Diff(first.Limits().Scaled(-1), late.Limits(), approx); diff != "" {
		t.Errorf("joining axes kept their own limits (-want +got):\n%s", diff)
	}
	if late.ShareGroup() != g {
		t.Error("ShareGroup() does not report the group")
	}
}

func TestShareGroupLeave(t *testing.T) {
	g := NewShareGroup()
	a := newTestAxes(t, WithShareGroup(g))
	b := newTestAxes(t, WithShareGroup(g))
	g.Leave(b)
	if b.ShareGroup() != nil {
		t.Error("left axes still report a group")
	}
	if err := a.SetMin(0.1, 0.1, 0.1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(FullLimits(1), b.Limits(), approx); diff != "" {
		t.Errorf("left axes followed the group (-want +got):\n%s", diff)
	}
	if members := g.Members(); len(members) != 1 || members[0] != a {
		t.Errorf("members = %v, want only the first axes", members)
	}
}

func TestShareGroupRejectedLimitsStayLocal(t *testing.T) {
	g := NewShareGroup()
	a := newTestAxes(t, WithShareGroup(g))
	b := newTestAxes(t, WithShareGroup(g))
	if err := a.SetBounds(0.5, 1, 0.5, 1, 0.5, 1); err == nil {
		t.Fatal("infeasible limits accepted")
	}
	if diff := cmp.Diff(FullLimits(1), b.Limits(), approx); diff != "" {
		t.Errorf("rejected limits reached the group (-want +got):\n%s", diff)
	}
}
