package service

import (
	"strings"
	"testing"
	"time"

	"schoolbackend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-signing-secret",
		Issuer:   "school-backend",
		Audience: "school-clients",
		Lifetime: 30 * time.Minute,
	}
}

func testUser() *models.AuthUser {
	return &models.AuthUser{
		Username:  "jane.doe@school.edu",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleTeacher,
	}
}

func TestTokenService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(TokenConfig{}, PolicyStrict)
	require.Error(t, err)
}

func TestTokenService_IssueValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testTokenConfig(), PolicyStrict)
	require.NoError(t, err)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@school.edu", claims.Subject)
	assert.Equal(t, "jane.doe@school.edu", claims.Email)
	assert.Equal(t, "Jane", claims.GivenName)
	assert.Equal(t, "Doe", claims.FamilyName)
	assert.Equal(t, models.RoleTeacher, claims.Role)
	assert.Equal(t, "school-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testTokenConfig(), PolicyStrict)
	require.NoError(t, err)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	// Flip one byte in the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = svc.Validate(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuing, err := NewTokenService(testTokenConfig(), PolicyStrict)
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Secret = "a-different-secret"
	validating, err := NewTokenService(otherCfg, PolicyStrict)
	require.NoError(t, err)

	token, err := issuing.Issue(testUser())
	require.NoError(t, err)

	_, err = validating.Validate(token)
	require.Error(t, err)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testTokenConfig(), PolicyStrict)
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := svc.Validate(tok)
		require.Error(t, err, "token %q should be rejected", tok)
	}
}

// The legacy system validated expired tokens on one of its two paths. Both
// behaviours are pinned down here: the strict policy (what the gate uses)
// rejects an expired token, the signature-only policy accepts it.
func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	cfg.Lifetime = -time.Minute

	strict, err := NewTokenService(cfg, PolicyStrict)
	require.NoError(t, err)
	lenient, err := NewTokenService(cfg, PolicySignatureOnly)
	require.NoError(t, err)

	expired, err := strict.Issue(testUser())
	require.NoError(t, err)

	_, err = strict.Validate(expired)
	require.Error(t, err, "strict policy must reject an expired token")

	claims, err := lenient.Validate(expired)
	require.NoError(t, err, "signature-only policy ignores lifetime")
	assert.Equal(t, "jane.doe@school.edu", claims.Subject)
}

func TestTokenService_IssuerAudienceMismatch(t *testing.T) {
	t.Parallel()

	issuing, err := NewTokenService(testTokenConfig(), PolicyStrict)
	require.NoError(t, err)
	token, err := issuing.Issue(testUser())
	require.NoError(t, err)

	wrongIssuer := testTokenConfig()
	wrongIssuer.Issuer = "someone-else"
	svc, err := NewTokenService(wrongIssuer, PolicyStrict)
	require.NoError(t, err)
	_, err = svc.Validate(token)
	require.Error(t, err)

	wrongAudience := testTokenConfig()
	wrongAudience.Audience = "other-clients"
	svc, err = NewTokenService(wrongAudience, PolicyStrict)
	require.NoError(t, err)
	_, err = svc.Validate(token)
	require.Error(t, err)
}

func TestTokenService_DefaultLifetime(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	cfg.Lifetime = 0
	svc, err := NewTokenService(cfg, PolicyStrict)
	require.NoError(t, err)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}
