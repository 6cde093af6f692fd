package util

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "secret")
	if err != nil {
		t.Fatal(err)
	}
	id, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("user id = %d, want 42", id)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(token, "other"); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestParseJWT_ForeignIssuer(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"iss":     "someone-else",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(raw, "secret"); err == nil {
		t.Error("token from a foreign issuer accepted")
	}
}

func TestParseJWT_MissingExpiry(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"iss":     tokenIssuer,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(raw, "secret"); err == nil {
		t.Error("token without expiry accepted")
	}
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Token abc", ""},
		{"Bearer", ""},
	}
	for _, c := range cases {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		if c.header != "" {
			r.Header.Set("Authorization", c.header)
		}
		if got := ExtractToken(r); got != c.want {
			t.Errorf("ExtractToken(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
