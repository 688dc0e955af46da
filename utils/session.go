package utils

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hades-platform/field-simulators/credential"
	"github.com/hades-platform/field-simulators/external/identity"
)

// SessionToken authenticates actorID with role against the configured identity provider.
// identity.api_key takes precedence over FIREBASE_API_KEY from the credential file.
func SessionToken(ctx context.Context, client *http.Client, actorID, role string) (string, error) {
	envFile := viper.GetString("credentials.env_file")

	account, err := credential.Load(envFile)
	if err != nil {
		return "", err
	}

	apiKey := viper.GetString("identity.api_key")
	if apiKey == "" {
		if apiKey, err = credential.LookupAPIKey(envFile); err != nil {
			return "", err
		}
	}
	if apiKey == "" {
		return "", &credential.ConfigurationError{
			Reason: "identity api key not configured. Set identity.api_key or " + credential.APIKeyEnvKey,
		}
	}

	signer, err := identity.NewCustomTokenSigner(account)
	if err != nil {
		return "", &credential.ConfigurationError{Reason: "load signing key", Err: err}
	}

	log.WithFields(log.Fields{
		"prefix": "auth",
		"actor":  actorID,
		"role":   role,
	}).Info("authenticating")

	return identity.New(apiKey, viper.GetString("identity.url"), signer, client).Authenticate(ctx, actorID, role)
}
