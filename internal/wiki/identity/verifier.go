// Package identity resolves bearer tokens into subjects by calling the
// identity service over HTTP.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/logging"
	"github.com/AaronBlvde/wiki-platform/internal/token"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/metrics"
)

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Valid   bool   `json:"valid"`
	Subject string `json:"subject"`
}

// Verifier asks the identity service whether a token is valid and who it
// belongs to. Transport failures and 5xx responses are retried with a
// fixed delay up to maxAttempts total calls; a definitive rejection (the
// identity service answered and said no) is never retried.
type Verifier struct {
	verifyURL   string
	client      *http.Client
	maxAttempts uint64
	delay       time.Duration
	logger      logging.Logger
}

func NewVerifier(identityAddr string, timeout time.Duration, maxAttempts uint64, delay time.Duration, l logging.Logger) *Verifier {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	return &Verifier{
		verifyURL:   strings.TrimRight(identityAddr, "/") + "/api/verify",
		client:      &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		delay:       delay,
		logger:      l.With("module", "identity_verifier"),
	}
}

// Resolve validates the Authorization header value and returns the subject
// the token belongs to. An empty header is rejected without any network
// call. Both a definitive rejection and an exhausted retry budget surface
// as common.ErrorUnauthorized.
func (v *Verifier) Resolve(ctx context.Context, rawHeader string) (string, error) {
	raw := token.StripBearer(rawHeader)
	if raw == "" {
		return "", common.ErrorUnauthorized
	}

	var subject string

	backoff := retry.WithMaxRetries(v.maxAttempts-1, retry.NewConstant(v.delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		valid, sub, err := v.verifyOnce(ctx, raw)
		if err != nil {
			return retry.RetryableError(err)
		}
		if !valid {
			return common.ErrorUnauthorized
		}
		subject = sub
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			metrics.VerifyRejected.Inc()
			return "", common.ErrorUnauthorized
		}
		metrics.VerifyRetriesExhausted.Inc()
		v.logger.Warn(ctx, "identity service unreachable, rejecting request",
			"attempts", v.maxAttempts, "error", err.Error())
		return "", common.ErrorUnauthorized
	}

	return subject, nil
}

// verifyOnce performs a single verification call. It returns an error only
// for transient conditions (transport failure, unexpected status); a
// definitive rejection comes back as valid=false with a nil error.
func (v *Verifier) verifyOnce(ctx context.Context, raw string) (bool, string, error) {
	body, err := json.Marshal(verifyRequest{Token: raw})
	if err != nil {
		return false, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return false, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var vr verifyResponse
		if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
			return false, "", err
		}
		if !vr.Valid || vr.Subject == "" {
			return false, "", nil
		}
		return true, vr.Subject, nil
	case http.StatusUnauthorized:
		return false, "", nil
	default:
		return false, "", fmt.Errorf("unexpected verify status %d", resp.StatusCode)
	}
}
