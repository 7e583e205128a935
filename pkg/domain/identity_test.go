package domain

import "testing"

func TestRoleAdmin(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleUser, false},
		{RoleAdmin, true},
		{RoleSuperadmin, true},
		{Role("moderator"), false},
		{Role(""), false},
	}
	for _, c := range cases {
		if got := c.role.Admin(); got != c.want {
			t.Errorf("Role(%q).Admin() = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperadmin} {
		if !r.Valid() {
			t.Errorf("Role(%q).Valid() = false, want true", r)
		}
	}
	if Role("root").Valid() {
		t.Error(`Role("root").Valid() = true, want false`)
	}
}

func TestIdentityPatchApply(t *testing.T) {
	id := Identity{Name: "Ada Lovelace", Email: "ada@example.com", Role: RoleUser, Active: true}

	name := "Ada King"
	patched := IdentityPatch{Name: &name}.Apply(id)
	if patched.Name != "Ada King" {
		t.Errorf("patched.Name = %q, want %q", patched.Name, "Ada King")
	}
	if patched.Email != "ada@example.com" {
		t.Errorf("patched.Email = %q, want unchanged %q", patched.Email, "ada@example.com")
	}
	if patched.Role != RoleUser || !patched.Active {
		t.Error("patch must not touch role or active flag")
	}
}

func TestIdentityPatchApplyEmptyIsNoop(t *testing.T) {
	id := Identity{Name: "Ada", Email: "ada@example.com"}
	if got := (IdentityPatch{}).Apply(id); got != id {
		t.Errorf("empty patch changed identity: %+v", got)
	}
}
