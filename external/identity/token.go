package identity

import (
	"crypto/rsa"
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/hades-platform/field-simulators/credential"
)

const (
	customTokenAudience = "https://identitytoolkit.googleapis.com/google.identity.identitytoolkit.v1.IdentityToolkit"
	customTokenLifetime = time.Hour
	maxUIDLength        = 128
)

var (
	errEmptyUID       = fmt.Errorf("empty uid")
	errUIDTooLong     = fmt.Errorf("uid must not be longer than %d characters", maxUIDLength)
	errNoClientEmail  = fmt.Errorf("service account has no client_email")
	errReservedClaims = fmt.Errorf("developer claims use a reserved claim name")
)

// claims the identity provider refuses inside developer claims
var reservedClaims = map[string]struct{}{
	"acr": {}, "amr": {}, "at_hash": {}, "aud": {}, "auth_time": {}, "azp": {}, "cnf": {}, "c_hash": {},
	"exp": {}, "firebase": {}, "iat": {}, "iss": {}, "jti": {}, "nbf": {}, "nonce": {}, "sub": {},
}

// TokenSigner mints short lived custom tokens asserting the identity of uid
type TokenSigner interface {
	CustomToken(uid string, claims map[string]interface{}) (string, error)
}

// CustomTokenSigner signs custom tokens with a service account private key
type CustomTokenSigner struct {
	email string
	keyID string
	key   *rsa.PrivateKey
	now   func() time.Time
}

// NewCustomTokenSigner parses the PEM private key of the service account
func NewCustomTokenSigner(account *credential.ServiceAccount) (*CustomTokenSigner, error) {
	if account.ClientEmail == "" {
		return nil, errNoClientEmail
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(account.PrivateKey))
	if err != nil {
		return nil, errors.Wrap(err, "parse service account private key")
	}

	return &CustomTokenSigner{
		email: account.ClientEmail,
		keyID: account.PrivateKeyID,
		key:   key,
		now:   time.Now,
	}, nil
}

// CustomToken returns an RS256 signed custom token for uid carrying claims as developer claims
func (s *CustomTokenSigner) CustomToken(uid string, claims map[string]interface{}) (string, error) {
	if uid == "" {
		return "", errEmptyUID
	}
	if len(uid) > maxUIDLength {
		return "", errUIDTooLong
	}
	for k := range claims {
		if _, ok := reservedClaims[k]; ok {
			return "", errors.Wrap(errReservedClaims, k)
		}
	}

	now := s.now()
	c := jwt.MapClaims{
		"iss": s.email,
		"sub": s.email,
		"aud": customTokenAudience,
		"iat": now.Unix(),
		"exp": now.Add(customTokenLifetime).Unix(),
		"uid": uid,
	}
	if len(claims) > 0 {
		c["claims"] = claims
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, c)
	if s.keyID != "" {
		token.Header["kid"] = s.keyID
	}

	return token.SignedString(s.key)
}
