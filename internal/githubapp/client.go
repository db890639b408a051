package githubapp

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v66/github"
)

// AppClient is a JWT-authenticated client scoped to the App itself. It can
// only call /app and installation-token issuance endpoints.
type AppClient struct {
	appID     int64
	key       *rsa.PrivateKey
	transport *ghinstallation.AppsTransport
	gh        *github.Client
}

// BuildAppClient constructs an RS256 JWT-authenticated client for appID and
// key. Construction is synchronous and performs no network I/O; appID=0 is
// accepted, with validation against the remote deferred to
// ValidateAppCredentials.
func BuildAppClient(appID uint64, key *rsa.PrivateKey) (*AppClient, error) {
	transport := ghinstallation.NewAppsTransportFromPrivateKey(http.DefaultTransport, int64(appID), key)
	return &AppClient{
		appID:     int64(appID),
		key:       key,
		transport: transport,
		gh:        github.NewClient(&http.Client{Transport: transport}),
	}, nil
}

// InstallationClient builds a client scoped to a specific installation,
// reusing this App's JWT transport. An App-level client cannot call most
// GitHub APIs, so every installation-scoped operation goes through this.
func (c *AppClient) InstallationClient(installationID uint64) *github.Client {
	transport := ghinstallation.NewFromAppsTransport(c.transport, int64(installationID))
	return github.NewClient(&http.Client{Transport: transport})
}

// credentialValidator is the narrow network-facing capability
// ValidateAppCredentials calls through, so tests can substitute a mock
// without making a real request.
type credentialValidator interface {
	validateCredentials(ctx context.Context) error
}

func (c *AppClient) validateCredentials(ctx context.Context) error {
	_, _, err := c.gh.Apps.Get(ctx, "")
	return err
}

// ValidateAppCredentials loads the private key at path, builds a client for
// appID, and confirms the credentials by calling GET /app.
func ValidateAppCredentials(ctx context.Context, appID uint64, path string) error {
	key, err := LoadPrivateKey(path)
	if err != nil {
		return &AuthenticationFailedError{
			Message: fmt.Sprintf("failed to validate GitHub App credentials: %s", err),
			Err:     err,
		}
	}

	client, err := BuildAppClient(appID, key)
	if err != nil {
		return &AuthenticationFailedError{
			Message: fmt.Sprintf("failed to validate GitHub App credentials: %s", err),
			Err:     err,
		}
	}

	return validateWith(ctx, client)
}

// validateWith runs the validation step through the credentialValidator
// capability, kept separate from ValidateAppCredentials so tests can inject
// a fake validator in place of *AppClient.
func validateWith(ctx context.Context, v credentialValidator) error {
	if err := v.validateCredentials(ctx); err != nil {
		return &AuthenticationFailedError{
			Message: fmt.Sprintf("failed to validate GitHub App credentials: %s", err),
			Err:     err,
		}
	}
	return nil
}
