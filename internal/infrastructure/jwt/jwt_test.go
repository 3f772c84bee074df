package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	s := New("super-secret", "HS256", time.Hour)

	tok, err := s.Issue(123, 0)
	require.NoError(t, err, "Issue should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	claims, err := s.Verify(tok)
	require.NoError(t, err, "Verify should not error for fresh token")
	require.NotNil(t, claims)

	assert.Equal(t, "123", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(-1*time.Second)))
}

func TestVerify_Table(t *testing.T) {
	makeToken := func(secret string, userID int64, exp time.Duration) string {
		s := New(secret, "HS256", time.Hour)
		tok, err := s.Issue(userID, exp)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		secret string
		token  string
		ok     bool
	}{
		{
			name:   "valid token",
			secret: "k1",
			token:  makeToken("k1", 42, 5*time.Minute),
			ok:     true,
		},
		{
			name:   "invalid secret (signature mismatch)",
			secret: "k2",
			token:  makeToken("k1", 42, 5*time.Minute),
			ok:     false,
		},
		{
			name:   "expired token",
			secret: "k1",
			token:  makeToken("k1", 42, -1*time.Minute),
			ok:     false,
		},
		{
			name:   "malformed token string",
			secret: "k1",
			token:  "not-a-jwt",
			ok:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.secret, "HS256", time.Hour)

			claims, err := s.Verify(tt.token)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "42", claims.Subject)
			} else {
				require.Error(t, err)
				assert.EqualError(t, err, "invalid token")
				assert.Nil(t, claims)
			}
		})
	}
}

func TestSubjectID(t *testing.T) {
	secret := "k1"
	s := New(secret, "HS256", time.Hour)

	tok, err := s.Issue(77, time.Minute)
	require.NoError(t, err)

	id, err := s.SubjectID(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestSubjectID_NonNumericSubject(t *testing.T) {
	secret := "k1"
	claims := jwtv5.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Minute)),
	}
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	s := New(secret, "HS256", time.Hour)
	_, err = s.SubjectID(tok)
	require.ErrorIs(t, err, ErrInvalidSubject)
}

func TestNew_UnknownAlgFallsBackToHS256(t *testing.T) {
	s := New("k1", "NOT-AN-ALG", time.Hour)

	tok, err := s.Issue(1, time.Minute)
	require.NoError(t, err)

	_, err = s.Verify(tok)
	require.NoError(t, err)
}
