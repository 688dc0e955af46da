package utils

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hades-platform/field-simulators/credential"
)

func writeCredentialFile(t *testing.T, apiKey string) string {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	encoded, err := credential.Encode(&credential.ServiceAccount{
		Type:         "service_account",
		ProjectID:    "hades-test",
		PrivateKeyID: "test-key-id",
		PrivateKey:   string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		ClientEmail:  "simulator@hades-test.iam.gserviceaccount.com",
	})
	require.NoError(t, err)

	content := fmt.Sprintf("%s=%s\n", credential.EnvKey, encoded)
	if apiKey != "" {
		content += fmt.Sprintf("%s=%s\n", credential.APIKeyEnvKey, apiKey)
	}

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0600))
	return file
}

func setConfig(t *testing.T, values map[string]interface{}) {
	for k, v := range values {
		viper.Set(k, v)
	}
	t.Cleanup(viper.Reset)
}

func TestSessionToken(t *testing.T) {
	var received map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithCustomToken", r.URL.Path)
		assert.Equal(t, "file-api-key", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"idToken":"session-token","expiresIn":"3600"}`)
	}))
	defer ts.Close()

	setConfig(t, map[string]interface{}{
		"credentials.env_file": writeCredentialFile(t, "file-api-key"),
		"identity.url":         ts.URL,
	})

	token, err := SessionToken(context.Background(), ts.Client(), "mock-reports-generator", "system")
	assert.NoError(t, err)
	assert.Equal(t, "session-token", token)
	assert.Equal(t, true, received["returnSecureToken"])
	assert.NotEmpty(t, received["token"])
}

func TestSessionTokenConfiguredAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "config-api-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"idToken":"session-token"}`)
	}))
	defer ts.Close()

	setConfig(t, map[string]interface{}{
		"credentials.env_file": writeCredentialFile(t, "file-api-key"),
		"identity.url":         ts.URL,
		"identity.api_key":     "config-api-key",
	})

	token, err := SessionToken(context.Background(), ts.Client(), "drone-simulator", "drone")
	assert.NoError(t, err)
	assert.Equal(t, "session-token", token)
}

func TestSessionTokenMissingAPIKey(t *testing.T) {
	setConfig(t, map[string]interface{}{
		"credentials.env_file": writeCredentialFile(t, ""),
	})
	if prev, ok := os.LookupEnv(credential.APIKeyEnvKey); ok {
		os.Unsetenv(credential.APIKeyEnvKey)
		t.Cleanup(func() { os.Setenv(credential.APIKeyEnvKey, prev) })
	}

	_, err := SessionToken(context.Background(), nil, "drone-simulator", "drone")

	var cerr *credential.ConfigurationError
	assert.True(t, errors.As(err, &cerr), "wrong error: %v", err)
}

func TestSessionTokenInvalidSigningKey(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	encoded, err := credential.Encode(&credential.ServiceAccount{
		Type:        "service_account",
		ProjectID:   "hades-test",
		PrivateKey:  "not a pem key",
		ClientEmail: "simulator@hades-test.iam.gserviceaccount.com",
	})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), ".env")
	content := fmt.Sprintf("%s=%s\n%s=file-api-key\n", credential.EnvKey, encoded, credential.APIKeyEnvKey)
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0600))

	setConfig(t, map[string]interface{}{
		"credentials.env_file": file,
		"identity.url":         ts.URL,
	})

	_, err = SessionToken(context.Background(), ts.Client(), "drone-simulator", "drone")

	var cerr *credential.ConfigurationError
	assert.True(t, errors.As(err, &cerr), "wrong error: %v", err)
	assert.Equal(t, "load signing key", cerr.Reason)
	assert.False(t, called, "no exchange without a signing key")
}
