// Package identity exchanges custom tokens of synthetic actors for session tokens.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix  = "identity"
	defaultURL = "https://identitytoolkit.googleapis.com"
	signInPath = "/v1/accounts:signInWithCustomToken"

	// RoleClaim is the developer claim carrying the declared role of an actor
	RoleClaim = "role"
)

// AuthenticationError is returned when a session token cannot be obtained.
// StatusCode and Body are set when the identity provider answered with an error.
type AuthenticationError struct {
	ActorID    string
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authenticate %s: identity provider responded %d: %s", e.ActorID, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("authenticate %s: %s", e.ActorID, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Identity - interface to obtain session tokens
type Identity interface {
	Authenticate(ctx context.Context, actorID, role string) (string, error)
}

type identity struct {
	apiKey string
	url    string
	signer TokenSigner
	client *http.Client
}

type signInRequest struct {
	Token             string `json:"token"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// Authenticate mints a custom token for actorID with the role claim and
// exchanges it for a session token
func (i identity) Authenticate(ctx context.Context, actorID, role string) (string, error) {
	customToken, err := i.signer.CustomToken(actorID, map[string]interface{}{RoleClaim: role})
	if err != nil {
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}

	body, err := json.Marshal(signInRequest{
		Token:             customToken,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}

	endpoint := fmt.Sprintf("%s%s?key=%s", i.url, signInPath, url.QueryEscape(i.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"actor":  actorID,
			"error":  err,
		}).Error("sign in with custom token")
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AuthenticationError{
			ActorID:    actorID,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	var r signInResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return "", &AuthenticationError{ActorID: actorID, Err: err}
	}

	if r.IDToken == "" {
		return "", &AuthenticationError{ActorID: actorID, Err: fmt.Errorf("response has no idToken")}
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"actor":      actorID,
		"role":       role,
		"expires_in": r.ExpiresIn,
	}).Debug("session token obtained")

	return r.IDToken, nil
}

// New - new Identity backed by the identity toolkit sign in endpoint.
// An empty url selects the public endpoint and a nil client http.DefaultClient.
func New(apiKey string, url string, signer TokenSigner, client *http.Client) Identity {
	u := defaultURL
	if url != "" {
		u = strings.TrimRight(url, "/")
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &identity{
		apiKey: apiKey,
		url:    u,
		signer: signer,
		client: client,
	}
}
