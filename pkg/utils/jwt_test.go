package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	token, err := ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !token.Valid {
		t.Fatal("token reported invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
	if claims["sub"] != "admin" {
		t.Errorf("sub = %v, want admin", claims["sub"])
	}
}

func TestValidateTokenRejectsUnsignedAlgorithm(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign with none: %v", err)
	}

	if _, err := ValidateToken(tokenString); err == nil {
		t.Fatal("token signed with alg=none was accepted")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	signed, err := GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	t.Setenv("JWT_SECRET", "a-different-secret")
	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("token with mismatched signature was accepted")
	}
}
