package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	before := time.Now()
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt, 2*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token.SignedString, claims, func(*jwt.Token) (any, error) {
		return []byte("secret-key"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, genToken.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Rejected(t *testing.T) {
	now := time.Now()
	valid := func() *jwt.RegisteredClaims {
		return &jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   strconv.Itoa(7),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noExp := valid()
	noExp.ExpiresAt = nil

	noSubject := valid()
	noSubject.Subject = ""

	badSubject := valid()
	badSubject.Subject = "seven"

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong key", token: signClaims(t, jwt.SigningMethodHS256, valid(), "other-key")},
		{name: "wrong issuer", token: signClaims(t, jwt.SigningMethodHS256, &jwt.RegisteredClaims{
			Issuer: "fake", Subject: "7", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}, "key")},
		{name: "expired", token: signClaims(t, jwt.SigningMethodHS256, expired, "key")},
		{name: "no expiration", token: signClaims(t, jwt.SigningMethodHS256, noExp, "key")},
		{name: "other algorithm", token: signClaims(t, jwt.SigningMethodHS384, valid(), "key")},
		{name: "empty subject", token: signClaims(t, jwt.SigningMethodHS256, noSubject, "key")},
		{name: "non numeric subject", token: signClaims(t, jwt.SigningMethodHS256, badSubject, "key")},
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, "key", "iss")
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
