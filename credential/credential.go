// Package credential loads the service account used to mint identity
// tokens for the simulated actors.
package credential

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix = "credential"

	// EnvKey is the dotenv / environment key holding the base64 encoded service account
	EnvKey = "FIREBASE_CREDENTIALS"

	// APIKeyEnvKey is the dotenv / environment key holding the identity provider api key
	APIKeyEnvKey = "FIREBASE_API_KEY"
)

// ServiceAccount is the decoded credential bundle of a service identity
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri,omitempty"`
	TokenURI                string `json:"token_uri,omitempty"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url,omitempty"`
	ClientX509CertURL       string `json:"client_x509_cert_url,omitempty"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

// ConfigurationError is returned when the credential bundle is missing or malformed
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Load reads the encoded service account from envFile and falls back to
// the process environment when the file is absent or has no value.
func Load(envFile string) (*ServiceAccount, error) {
	encoded, err := lookup(envFile, EnvKey)
	if err != nil {
		return nil, err
	}

	if encoded == "" {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("%s not found. Check %s or the environment", EnvKey, envFile),
		}
	}

	account, err := Decode(encoded)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"project_id": account.ProjectID,
	}).Debug("service account loaded")

	return account, nil
}

// LookupAPIKey reads the identity provider api key the same way Load reads the credential
func LookupAPIKey(envFile string) (string, error) {
	return lookup(envFile, APIKeyEnvKey)
}

// Decode turns a base64 encoded JSON document into a service account
func Decode(encoded string) (*ServiceAccount, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &ConfigurationError{Reason: "decode base64 credential", Err: err}
	}

	var account ServiceAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, &ConfigurationError{Reason: "parse credential json", Err: err}
	}

	return &account, nil
}

// Encode is the inverse of Decode
func Encode(account *ServiceAccount) (string, error) {
	data, err := json.Marshal(account)
	if err != nil {
		return "", errors.Wrap(err, "marshal credential")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// lookup returns the value of key from the dotenv file, or from the environment
// when the file does not exist, cannot be parsed or does not set it.
func lookup(envFile, key string) (string, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			dotenv := viper.New()
			dotenv.SetConfigFile(envFile)
			dotenv.SetConfigType("env")
			if err := dotenv.ReadInConfig(); err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"file":   envFile,
					"error":  err,
				}).Warn("unreadable env file, using the environment")
			} else if value := strings.TrimSpace(dotenv.GetString(key)); value != "" {
				return value, nil
			}
		}
	}

	env := viper.New()
	if err := env.BindEnv(key); err != nil {
		return "", errors.Wrap(err, "bind env")
	}
	return strings.TrimSpace(env.GetString(key)), nil
}
