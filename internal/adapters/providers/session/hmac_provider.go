package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/pkg/errors"
)

// HMACProvider signs session claims with HMAC-SHA256 into an opaque
// two-part token "payload.signature", both base64url encoded.
type HMACProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ providers.SessionProvider = (*HMACProvider)(nil)

// NewHMACProvider creates a session provider with the given signing
// secret and token lifetime.
func NewHMACProvider(secret string, ttl time.Duration) *HMACProvider {
	return &HMACProvider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign issues a token for the claims, stamping the expiry from the
// provider's TTL.
func (p *HMACProvider) Sign(claims providers.SessionClaims) (string, error) {
	claims.ExpiresAt = p.now().Add(p.ttl)

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", errors.NewInternalError("failed to encode session claims", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	sig := p.sign(encoded)
	return encoded + "." + sig, nil
}

// Verify checks the token signature and expiry and returns the claims.
func (p *HMACProvider) Verify(token string) (*providers.SessionClaims, error) {
	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return nil, errors.NewUnauthorizedError("malformed session token")
	}

	expected := p.sign(encoded)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return nil, errors.NewUnauthorizedError("invalid session signature")
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.NewUnauthorizedError("malformed session payload")
	}

	var claims providers.SessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.NewUnauthorizedError("malformed session payload")
	}

	if !p.now().Before(claims.ExpiresAt) {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	return &claims, nil
}

func (p *HMACProvider) sign(encoded string) string {
	mac := hmac.New(sha256.New, p.secret)
	fmt.Fprint(mac, encoded)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
