// Package unifi talks to the wireless controller's hotspot API: session
// login, voucher CRUD and the guest listing. One authenticated session is
// shared across all operations and re-established lazily after the
// controller expires it.
package unifi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/pkg/metrics"
)

// CreateResult reports a successful voucher creation. Code is only populated
// for single-voucher requests; the controller does not hand back individual
// codes for bulk creation.
type CreateResult struct {
	Code   string
	Amount int
}

type Client struct {
	cfg  config.UnifiConfig
	log  *slog.Logger
	base string

	mu      sync.Mutex
	session *http.Client
}

func NewClient(cfg config.UnifiConfig, log *slog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		log:  log,
		base: fmt.Sprintf("https://%s:%d", cfg.Host, cfg.Port),
	}
}

// Create requests amount vouchers of the given preset. For amount == 1 the
// created voucher is re-fetched by its creation time and the result carries
// its display-formatted code.
func (c *Client) Create(ctx context.Context, t voucher.Type, amount int, note string) (CreateResult, error) {
	if amount < 1 {
		amount = 1
	}

	payload := map[string]any{
		"cmd":    "create-voucher",
		"expire": t.ExpirationMinutes,
		"n":      amount,
		"quota":  0,
	}
	if t.SingleUse {
		payload["quota"] = 1
	}
	if note != "" {
		payload["note"] = note
	}
	if t.UploadLimitKbps > 0 {
		payload["up"] = t.UploadLimitKbps
	}
	if t.DownloadLimitKbps > 0 {
		payload["down"] = t.DownloadLimitKbps
	}
	if t.DataLimitMB > 0 {
		payload["bytes"] = t.DataLimitMB
	}

	// The create command is its own retryable unit. Folding the code
	// re-fetch into the same closure would re-issue the command when the
	// re-fetch hits a stale session, duplicating the voucher.
	var created []struct {
		CreateTime int64 `json:"create_time"`
	}
	err := c.withSession(ctx, "create voucher", func(ctx context.Context, s *http.Client) error {
		return c.call(ctx, s, http.MethodPost, c.sitePath("cmd/hotspot"), payload, &created)
	})
	if err != nil {
		return CreateResult{}, err
	}

	result := CreateResult{Amount: amount}
	if amount > 1 {
		c.log.Info("created vouchers", "amount", amount)
		return result, nil
	}
	if len(created) == 0 {
		return CreateResult{}, errs.New("controller returned no created voucher")
	}

	var fetched []voucher.Voucher
	filter := map[string]any{"create_time": created[0].CreateTime}
	err = c.withSession(ctx, "fetch created voucher", func(ctx context.Context, s *http.Client) error {
		return c.call(ctx, s, http.MethodPost, c.sitePath("stat/voucher"), filter, &fetched)
	})
	if err != nil {
		return CreateResult{}, err
	}
	if len(fetched) == 0 {
		return CreateResult{}, errs.New("created voucher not found by create time")
	}
	result.Code = voucher.FormatCode(fetched[0].Code)
	c.log.Info("created voucher", "code", result.Code)
	return result, nil
}

// Remove revokes a voucher by its controller identity.
func (c *Client) Remove(ctx context.Context, id string) error {
	payload := map[string]any{
		"cmd": "delete-voucher",
		"_id": id,
	}
	return c.withSession(ctx, "remove voucher", func(ctx context.Context, s *http.Client) error {
		return c.call(ctx, s, http.MethodPost, c.sitePath("cmd/hotspot"), payload, nil)
	})
}

// List fetches every voucher known to the controller.
func (c *Client) List(ctx context.Context) ([]voucher.Voucher, error) {
	var vouchers []voucher.Voucher
	err := c.withSession(ctx, "list vouchers", func(ctx context.Context, s *http.Client) error {
		return c.call(ctx, s, http.MethodGet, c.sitePath("stat/voucher"), nil, &vouchers)
	})
	if err != nil {
		return nil, err
	}
	c.log.Info("fetched vouchers", "count", len(vouchers))
	return vouchers, nil
}

// Guests fetches the currently known hotspot guests.
func (c *Client) Guests(ctx context.Context) ([]voucher.Guest, error) {
	var guests []voucher.Guest
	err := c.withSession(ctx, "list guests", func(ctx context.Context, s *http.Client) error {
		return c.call(ctx, s, http.MethodGet, c.sitePath("stat/guest"), nil, &guests)
	})
	if err != nil {
		return nil, err
	}
	c.log.Info("fetched guests", "count", len(guests))
	return guests, nil
}

// withSession runs op against the shared session, retrying exactly once with
// a fresh session when the controller reports the current one expired. Any
// failure discards the session so the next call re-authenticates from
// scratch; a session is never left half-authenticated.
func (c *Client) withSession(ctx context.Context, op string, fn func(context.Context, *http.Client) error) error {
	outcome := metrics.OutcomeOK
	defer func() {
		metrics.ControllerRequests.WithLabelValues(op, outcome).Inc()
	}()

	for attempt := 0; ; attempt++ {
		s, err := c.acquireSession(ctx)
		if err != nil {
			outcome = metrics.OutcomeError
			return err
		}

		err = fn(ctx, s)
		if err == nil {
			return nil
		}

		c.discardSession(s)

		if infra.IsKind(err, infra.KindSessionExpired) && attempt == 0 {
			c.log.Info("session expired, re-authenticating and retrying", "operation", op)
			metrics.ControllerRetries.Inc()
			continue
		}

		outcome = metrics.OutcomeError
		return errs.Wrap(err, op+" failed")
	}
}

// acquireSession returns the shared session, logging in first when none
// exists. Login is serialized behind the mutex so concurrent operations
// cannot stampede the controller with parallel logins.
func (c *Client) acquireSession(ctx context.Context) (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return c.session, nil
	}

	if strings.Contains(c.cfg.Username, "@") {
		return nil, infra.WrapControllerErr(c.log, infra.KindAuthRejected,
			"cloud credentials are not supported", nil)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errs.Wrap(err, "create cookie jar")
	}
	s := &http.Client{
		Jar:     jar,
		Timeout: c.cfg.Timeout,
		Transport: &http.Transport{
			// Controllers ship with self-signed certificates.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	login := map[string]any{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	}
	if err := c.call(ctx, s, http.MethodPost, "/api/login", login, nil); err != nil {
		if infra.IsKind(err, infra.KindSessionExpired) {
			// A 401 on the login call itself means the credentials are bad,
			// not that a session went stale.
			return nil, infra.WrapControllerErr(c.log, infra.KindAuthRejected, "login rejected", err)
		}
		return nil, errs.Wrap(err, "login failed")
	}

	c.log.Debug("controller login successful", "site", c.cfg.Site)
	c.session = s
	return s, nil
}

func (c *Client) discardSession(s *http.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == s {
		c.session = nil
	}
}

func (c *Client) sitePath(suffix string) string {
	return "/api/s/" + c.cfg.Site + "/" + suffix
}

// call issues one controller API request and decodes the data array of the
// response envelope into out (when non-nil).
func (c *Client) call(ctx context.Context, s *http.Client, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.Do(req)
	if err != nil {
		// No HTTP status at all: connection refused, DNS failure, timeout.
		return infra.WrapControllerErr(c.log, infra.KindRemoteUnavailable, "controller request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return infra.WrapControllerErr(c.log, infra.KindSessionExpired,
			"controller returned 401", nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapControllerErr(c.log, infra.KindRemoteUnavailable,
			fmt.Sprintf("controller returned status %d", resp.StatusCode), nil)
	}

	var envelope struct {
		Meta struct {
			RC  string `json:"rc"`
			Msg string `json:"msg"`
		} `json:"meta"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errs.Wrap(err, "decode response")
	}
	if envelope.Meta.RC != "ok" {
		return errs.New("controller error: " + envelope.Meta.Msg)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errs.Wrap(err, "decode response data")
		}
	}
	return nil
}
