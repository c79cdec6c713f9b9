package services

import (
	"testing"
	"time"

	"mountspa_server/lib"
	"mountspa_server/structs"
	"mountspa_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

func testAuthService() *AuthService {
	cfg := &structs.Config{
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test_secret",
			AccessTokenExpiry: 15 * time.Minute,
			Argon: &structs.ArgonParams{
				Memory:  8 * 1024, // keep the test fast
				Time:    1,
				Threads: 2,
				KeyLen:  32,
				SaltLen: 16,
			},
		},
	}
	return NewAuthService(cfg, gecho.NewDefaultLogger(), nil)
}

func TestHashAndVerifyPassword(t *testing.T) {
	as := testAuthService()

	hash, err := as.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	valid, err := as.VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !valid {
		t.Fatal("correct password rejected")
	}

	valid, err = as.VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if valid {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	as := testAuthService()

	if _, err := as.VerifyPassword("anything", "not-an-argon2-hash"); err == nil {
		t.Fatal("malformed hash must error")
	}
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	as := testAuthService()
	user := &tables.User{
		Id:    uuid.New(),
		Email: "admin@mountspa.pl",
		Role:  "admin",
	}

	token, err := as.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := lib.ParseToken(token, "test_secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Sub != user.Id {
		t.Fatalf("Sub = %s, want %s", claims.Sub, user.Id)
	}
	if claims.Email != user.Email || claims.Role != "admin" {
		t.Fatalf("claims = %+v", claims)
	}
	if !claims.Exp.After(time.Now()) {
		t.Fatal("token already expired")
	}

	if _, err := lib.ParseToken(token, "other_secret"); err == nil {
		t.Fatal("token must not verify under a different secret")
	}
}
