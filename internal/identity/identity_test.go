package identity

import "testing"

func TestEnvProvider(t *testing.T) {
	t.Setenv("STEPSYNC_UID", "u-123")
	t.Setenv("STEPSYNC_EMAIL", "me@example.com")

	u, err := EnvProvider{}.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u.UID != "u-123" || u.Email != "me@example.com" {
		t.Errorf("user = %+v, want u-123/me@example.com", u)
	}
}

func TestEnvProviderMissingUID(t *testing.T) {
	t.Setenv("STEPSYNC_UID", "")
	if _, err := (EnvProvider{}).Current(); err == nil {
		t.Fatal("expected error when STEPSYNC_UID unset")
	}
}

func TestStatic(t *testing.T) {
	u, err := Static{User: User{UID: "u-1"}}.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u.UID != "u-1" {
		t.Errorf("uid = %q, want u-1", u.UID)
	}

	if _, err := (Static{}).Current(); err == nil {
		t.Fatal("expected error for empty static identity")
	}
}
