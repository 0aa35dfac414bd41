package service

import (
	"errors"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/util"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))

	id, err := s.Register("  alice ", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected id")
	}

	u, err := s.UserRepo.FindByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "alice" {
		t.Fatalf("Username = %q, want trimmed", u.Username)
	}
	if util.DetectCredential(u.Password) != util.CredentialBcrypt {
		t.Fatalf("password stored as %q", u.Password)
	}

	if _, err := s.Register("alice", "other"); !errors.Is(err, util.ErrDuplicateUsername) {
		t.Fatalf("second Register err = %v, want ErrDuplicateUsername", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	for _, tc := range [][2]string{{"", "pw"}, {"   ", "pw"}, {"bob", ""}} {
		if _, err := s.Register(tc[0], tc[1]); !errors.Is(err, util.ErrMissingFields) {
			t.Errorf("Register(%q, %q) err = %v", tc[0], tc[1], err)
		}
	}
}

// 注册区分大小写而登录不区分，保持现有行为
func TestRegisterCaseSensitiveLoginCaseInsensitive(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))

	firstID, err := s.Register("Dave", "one")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Register("dave", "two"); err != nil {
		t.Fatalf("differently cased username should register: %v", err)
	}

	u, err := s.Authenticate("DAVE", "one")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.ID != firstID {
		t.Fatalf("resolved id %d, want first registered %d", u.ID, firstID)
	}
	if _, err := s.Authenticate("dave", "two"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("second account is shadowed at login, got err = %v", err)
	}
}

func TestAuthenticateErrors(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	if _, err := s.Register("erin", "right"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Authenticate("nobody", "x"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown user err = %v", err)
	}
	if _, err := s.Authenticate("erin", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("bad password err = %v", err)
	}
	if _, err := s.Authenticate("ERIN", "right"); err != nil {
		t.Fatalf("case-insensitive login failed: %v", err)
	}
}

func TestAuthenticateUpgradesPlaintext(t *testing.T) {
	db := newTestDB(t)
	s := newTestAuthService(t, db)

	legacy := &model.User{Username: "frank", Password: "letmein"}
	if err := s.UserRepo.Create(legacy); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Authenticate("frank", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
	stored, _ := s.UserRepo.FindByID(legacy.ID)
	if stored.Password != "letmein" {
		t.Fatal("failed login must not touch the credential")
	}

	u, err := s.Authenticate("frank", "letmein")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if util.DetectCredential(u.Password) != util.CredentialBcrypt {
		t.Fatalf("returned user not upgraded: %q", u.Password)
	}
	stored, _ = s.UserRepo.FindByID(legacy.ID)
	if util.DetectCredential(stored.Password) != util.CredentialBcrypt {
		t.Fatalf("stored credential not upgraded: %q", stored.Password)
	}

	if _, err := s.Authenticate("frank", "letmein"); err != nil {
		t.Fatalf("login after upgrade: %v", err)
	}
}

func TestRegisterLongPassword(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	long := strings.Repeat("a", 80)

	id, err := s.Register("longpw", long)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	u, err := s.UserRepo.FindByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if util.DetectCredential(u.Password) != util.CredentialPBKDF2 {
		t.Fatalf("password stored as %q", u.Password)
	}

	if _, err := s.Authenticate("longpw", long); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if _, err := s.Authenticate("longpw", long[:72]); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("truncated password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUpgradesLongPlaintext(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	long := strings.Repeat("a", 80)

	legacy := &model.User{Username: "legacy", Password: long}
	if err := s.UserRepo.Create(legacy); err != nil {
		t.Fatal(err)
	}

	u, err := s.Authenticate("legacy", long)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if util.DetectCredential(u.Password) != util.CredentialPBKDF2 {
		t.Fatalf("returned user not upgraded: %q", u.Password)
	}
	stored, _ := s.UserRepo.FindByID(legacy.ID)
	if stored.Password == long || util.DetectCredential(stored.Password) != util.CredentialPBKDF2 {
		t.Fatalf("stored credential not upgraded: %q", stored.Password)
	}

	if _, err := s.Authenticate("legacy", long); err != nil {
		t.Fatalf("login after upgrade: %v", err)
	}
}

func TestAuthenticateWerkzeugHashNotRewritten(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	const hashed = "pbkdf2:sha256:1000$salty$8a606f25b1cd20f1b639e996fa58d38d8b99a67c8831f6d3bf70180fe29a5c40"
	user := &model.User{Username: "gina", Password: hashed}
	if err := s.UserRepo.Create(user); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Authenticate("gina", "secret"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	stored, _ := s.UserRepo.FindByID(user.ID)
	if stored.Password != hashed {
		t.Fatalf("hashed credential rewritten to %q", stored.Password)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	s := newTestAuthService(t, newTestDB(t))
	id, err := s.Register("hank", "pw")
	if err != nil {
		t.Fatal(err)
	}

	token, user, err := s.Login("hank", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != id || user.ID != id || claims.Username != "hank" || claims.ID == "" {
		t.Fatalf("claims = %+v", claims)
	}
}
