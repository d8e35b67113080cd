package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Password hashing
// ---------------------------------------------------------------------------

func TestHashAndVerify(t *testing.T) {
	hash, err := hashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Fatalf("expected salt$digest format, got %q", hash)
	}
	if !verifyPassword(hash, "s3cret") {
		t.Fatal("correct password should verify")
	}
	if verifyPassword(hash, "wrong") {
		t.Fatal("wrong password should not verify")
	}
}

func TestHashUniquePerCall(t *testing.T) {
	a, _ := hashPassword("same")
	b, _ := hashPassword("same")
	if a == b {
		t.Fatal("hashes should differ due to random salt")
	}
	if !verifyPassword(a, "same") || !verifyPassword(b, "same") {
		t.Fatal("both hashes should verify the original password")
	}
}

func TestVerifyMalformed(t *testing.T) {
	if verifyPassword("", "pw") {
		t.Fatal("empty stored hash should not verify")
	}
	if verifyPassword("nodollar", "pw") {
		t.Fatal("hash without separator should not verify")
	}
	if verifyPassword("salt$nothex!", "pw") {
		t.Fatal("non-hex digest should not verify")
	}
	if verifyPassword("salt$abcd", "") {
		t.Fatal("empty password should not verify")
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

func TestCreateAndAuthorizeAccount(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateAccount("admin", "hunter2", "admin@example.com"); err != nil {
		t.Fatalf("create account: %v", err)
	}

	if !authorize(s, "admin", "hunter2") {
		t.Fatal("valid credentials should authorize")
	}
	if authorize(s, "admin", "wrong") {
		t.Fatal("wrong password should not authorize")
	}
	if authorize(s, "ghost", "hunter2") {
		t.Fatal("unknown user should not authorize")
	}
}

func TestGetAccountMissing(t *testing.T) {
	s := newTestStore(t)
	a, err := s.GetAccount("nobody")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if a != nil {
		t.Fatal("expected nil for missing account")
	}
}

func TestInactiveAccountRejected(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.CreateAccount("old", "pw", "")
	s.db.Model(a).Update("is_active", false)

	if authorize(s, "old", "pw") {
		t.Fatal("inactive account should not authorize")
	}
}
