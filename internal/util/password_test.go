package util

import (
	"strings"
	"testing"
)

const (
	pbkdf2Secret = "pbkdf2:sha256:1000$salty$8a606f25b1cd20f1b639e996fa58d38d8b99a67c8831f6d3bf70180fe29a5c40"
	scryptSecret = "scrypt:1024:8:1$salty$30b41f51bf4c57e2b1c2de70108dc37c82d321733c04d90efd9d9e3604599dd20ae90762465d7043429cff6965b4471af6362d230fef189e2d8732dd2ca83fb4"
)

func TestDetectCredential(t *testing.T) {
	hashed, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	tests := []struct {
		stored string
		want   CredentialKind
	}{
		{hashed, CredentialBcrypt},
		{"$2y$" + hashed[4:], CredentialBcrypt},
		// 以 bcrypt 前缀开头但结构不完整的旧明文密码
		{"$2a$10$abcdefghijklmnopqrstuv", CredentialPlaintext},
		{"$2b$hunter2", CredentialPlaintext},
		{pbkdf2Secret, CredentialPBKDF2},
		{scryptSecret, CredentialScrypt},
		{"hunter2", CredentialPlaintext},
		{"", CredentialPlaintext},
	}
	for _, tt := range tests {
		if got := DetectCredential(tt.stored); got != tt.want {
			t.Errorf("DetectCredential(%q) = %v, want %v", tt.stored, got, tt.want)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if DetectCredential(hashed) != CredentialBcrypt {
		t.Fatalf("HashPassword produced %q", hashed)
	}

	tests := []struct {
		name     string
		stored   string
		password string
		want     bool
	}{
		{"bcrypt match", hashed, "secret", true},
		{"bcrypt mismatch", hashed, "Secret", false},
		{"pbkdf2 match", pbkdf2Secret, "secret", true},
		{"pbkdf2 mismatch", pbkdf2Secret, "nope", false},
		{"scrypt match", scryptSecret, "secret", true},
		{"scrypt mismatch", scryptSecret, "nope", false},
		{"plaintext match", "secret", "secret", true},
		{"plaintext mismatch", "secret", "secret ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckPassword(tt.stored, tt.password)
			if err != nil {
				t.Fatalf("CheckPassword: %v", err)
			}
			if got != tt.want {
				t.Fatalf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckPasswordMalformedWerkzeug(t *testing.T) {
	for _, stored := range []string{
		"pbkdf2:sha256:1000$onlysalt",
		"pbkdf2:md5:1000$salt$abcd",
		"pbkdf2:sha256:x$salt$abcd",
		"scrypt:a:8:1$salt$abcd",
	} {
		ok, err := CheckPassword(stored, "secret")
		if ok || err == nil {
			t.Errorf("CheckPassword(%q) = %v, %v; want false with error", stored, ok, err)
		}
	}
}

func TestCheckPasswordPlaintextWithBcryptPrefix(t *testing.T) {
	const stored = "$2b$mypassword"
	ok, err := CheckPassword(stored, stored)
	if err != nil || !ok {
		t.Fatalf("CheckPassword() = %v, %v; want true", ok, err)
	}
}

func TestHashPasswordLong(t *testing.T) {
	long := strings.Repeat("a", 80)

	hashed, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if DetectCredential(hashed) != CredentialPBKDF2 {
		t.Fatalf("HashPassword produced %q, want pbkdf2", hashed)
	}
	if !strings.HasPrefix(hashed, "pbkdf2:sha256:600000$") {
		t.Fatalf("HashPassword produced %q", hashed)
	}

	tests := []struct {
		password string
		want     bool
	}{
		{long, true},
		{long[:72], false},
		{long + "a", false},
	}
	for _, tt := range tests {
		got, err := CheckPassword(hashed, tt.password)
		if err != nil {
			t.Fatalf("CheckPassword: %v", err)
		}
		if got != tt.want {
			t.Errorf("CheckPassword(len %d) = %v, want %v", len(tt.password), got, tt.want)
		}
	}
}

func TestHashPBKDF2Salt(t *testing.T) {
	a, err := hashPBKDF2("secret", 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := hashPBKDF2("secret", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("expected distinct salts")
	}
	parts := strings.Split(a, "$")
	if len(parts) != 3 || len(parts[1]) != saltLength {
		t.Fatalf("hash = %q", a)
	}
	if ok, err := CheckPassword(a, "secret"); err != nil || !ok {
		t.Fatalf("CheckPassword() = %v, %v", ok, err)
	}
}
