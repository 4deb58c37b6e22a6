package account

import (
	"testing"
	"time"
)

// TestValidate covers account field validation.
func TestValidate(t *testing.T) {
	a := Account{ID: "1", Email: "julian@beardbasketball.com", Role: RoleAdmin}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid account rejected: %v", err)
	}

	cases := []struct {
		name string
		acct Account
		want error
	}{
		{"empty email", Account{Role: RoleAdmin}, ErrEmptyEmail},
		{"missing @", Account{Email: "nope", Role: RoleAdmin}, ErrInvalidEmail},
		{"bad role", Account{Email: "a@b.com", Role: "coach"}, ErrInvalidRole},
	}
	for _, c := range cases {
		if err := c.acct.Validate(); err != c.want {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

// TestPasswordRoundTrip verifies SetPassword/CheckPassword agree and reject
// wrong passwords.
func TestPasswordRoundTrip(t *testing.T) {
	var a Account
	if err := a.SetPassword("short"); err != ErrPasswordTooShort {
		t.Fatalf("short password: got %v", err)
	}
	if err := a.SetPassword(""); err != ErrEmptyPassword {
		t.Fatalf("empty password: got %v", err)
	}
	if err := a.SetPassword("crossover-drills-2026"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := a.CheckPassword("crossover-drills-2026"); err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if err := a.CheckPassword("wrong-password-entirely"); err != ErrWrongPassword {
		t.Fatalf("wrong password: got %v", err)
	}
}

// TestLockout verifies the failed-login threshold locks and reset clears it.
func TestLockout(t *testing.T) {
	var a Account
	for i := 0; i < MaxFailedLogins-1; i++ {
		a.RecordFailedLogin()
		if a.IsLocked() {
			t.Fatalf("locked after %d failures", i+1)
		}
	}
	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Fatal("not locked at threshold")
	}
	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 || !a.LockedUntil.Equal(time.Time{}) {
		t.Fatal("reset did not clear lockout state")
	}
}
