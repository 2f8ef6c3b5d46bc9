package authz_test

import (
	"testing"

	"github.com/lecturevault/lecturevault/internal/authz"
	"github.com/lecturevault/lecturevault/internal/store"
)

func TestCanRead_AdminAnyYear(t *testing.T) {
	admin := authz.Actor{ID: "a1", Role: store.RoleAdmin, Year: 2}
	for _, moduleYear := range []int{1, 2, 3, 5} {
		d := authz.CanRead(admin, moduleYear)
		if !d.Allow {
			t.Errorf("CanRead(admin, %d).Allow = false, want true (%s)", moduleYear, d.Reason)
		}
	}
}

func TestCanRead_StudentYearMatch(t *testing.T) {
	student := authz.Actor{ID: "s1", Role: store.RoleStudent, Year: 3}
	d := authz.CanRead(student, 3)
	if !d.Allow {
		t.Fatalf("CanRead(student year 3, module year 3).Allow = false (%s)", d.Reason)
	}
}

func TestCanRead_StudentYearMismatch(t *testing.T) {
	tests := []struct {
		actorYear  int
		moduleYear int
	}{
		{1, 2},
		{2, 1},
		{4, 5},
	}
	for _, tt := range tests {
		student := authz.Actor{ID: "s1", Role: store.RoleStudent, Year: tt.actorYear}
		d := authz.CanRead(student, tt.moduleYear)
		if d.Allow {
			t.Errorf("CanRead(year %d, module year %d).Allow = true, want false", tt.actorYear, tt.moduleYear)
		}
		if d.Reason == "" {
			t.Errorf("CanRead(year %d, module year %d) has empty reason", tt.actorYear, tt.moduleYear)
		}
	}
}

func TestCanRead_UnassignedYearMatchesNothing(t *testing.T) {
	student := authz.Actor{ID: "s1", Role: store.RoleStudent, Year: store.YearUnassigned}
	// Even a module with year 0 would not match an unassigned student.
	for _, moduleYear := range []int{0, 1, 2} {
		d := authz.CanRead(student, moduleYear)
		if d.Allow {
			t.Errorf("CanRead(unassigned, module year %d).Allow = true, want false", moduleYear)
		}
	}
}

func TestCanMutate_AdminOnly(t *testing.T) {
	admin := authz.Actor{ID: "a1", Role: store.RoleAdmin, Year: 0}
	if d := authz.CanMutate(admin); !d.Allow {
		t.Errorf("CanMutate(admin).Allow = false (%s)", d.Reason)
	}

	// Non-admin roles may never mutate, even with a matching year on the target.
	for _, role := range []string{store.RoleStudent, "lecturer", ""} {
		actor := authz.Actor{ID: "s1", Role: role, Year: 2}
		if d := authz.CanMutate(actor); d.Allow {
			t.Errorf("CanMutate(role %q).Allow = true, want false", role)
		}
	}
}

func TestActorFromUser(t *testing.T) {
	u := &store.User{ID: "u1", Role: store.RoleStudent, Year: 2}
	a := authz.ActorFromUser(u)
	if a.ID != "u1" || a.Role != store.RoleStudent || a.Year != 2 {
		t.Errorf("ActorFromUser = %+v, want fields copied from user", a)
	}
}
