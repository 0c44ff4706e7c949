package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/f4f-study-portal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, models.RoleAdministrator, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, models.RoleAdministrator, token.Role)
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
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, models.RoleNurse, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", 456, models.RoleSupervisor, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, models.RoleSupervisor, parsed.Role)
	assert.Equal(t, genToken.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("real-issuer", 1, models.RoleAdministrator, time.Hour, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("real-issuer", 1, models.RoleAdministrator, -time.Second, "key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "real-issuer"},
		{"wrong issuer", valid.SignedString, "key", "fake-issuer"},
		{"expired", expired.SignedString, "key", "real-issuer"},
		{"malformed", "not.a.token", "key", "real-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_ExpiredIsTokenExpired(t *testing.T) {
	expired, err := GenerateJWTToken("iss", 1, models.RoleAdministrator, -time.Minute, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(expired.SignedString, "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer  abc", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnverifiedClaims(t *testing.T) {
	token, err := GenerateJWTToken("iss", 9, models.RoleNurse, time.Hour, "key")
	require.NoError(t, err)

	claims, err := ParseUnverifiedClaims(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "9", claims.Subject)
	assert.Equal(t, models.RoleNurse, claims.Role)

	_, err = ParseUnverifiedClaims("garbage")
	assert.Error(t, err)
}
