package loan

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusCompleted, StatusDefaulted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "approved", "PENDING"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusPending, StatusActive, StatusCompleted, StatusDefaulted}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusActive}:   true,
		{StatusActive, StatusCompleted}: true,
		{StatusActive, StatusDefaulted}: true,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Status{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestInterestTypeValid(t *testing.T) {
	if !InterestSimple.Valid() || !InterestCompound.Valid() {
		t.Fatal("known interest types should be valid")
	}
	if InterestType("flat").Valid() {
		t.Fatal("unknown interest type should be invalid")
	}
}
