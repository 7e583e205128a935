package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// TokenSource supplies the session token attached to each request. Reading
// through an interface (rather than capturing the token at construction)
// keeps an in-flight logout from racing a stale credential onto the wire.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource for a fixed token, e.g. one supplied via the
// environment.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client is the Vestra API client. One instance is shared process-wide; it
// holds no per-call state, so concurrent in-flight requests are safe.
type Client struct {
	baseURL       string
	tokens        TokenSource
	onAuthExpired func()
	httpClient    *http.Client
}

// New creates a new API client. tokens may be nil for a purely anonymous
// client.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OnAuthExpired registers fn to run whenever the API rejects the session
// token, before the AuthError is returned to the caller. Wired to the
// session controller's Logout so the UI converges to logged-out state ahead
// of per-view error handling.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// RegisterRequest is the payload for creating a new investor account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Referral string `json:"referral,omitempty"`
}

// CreateInvestmentRequest is the payload for opening a new investment.
type CreateInvestmentRequest struct {
	Plan   string  `json:"plan"`
	Amount float64 `json:"amount"`
}

// Login exchanges credentials for a session token and the identity it
// belongs to. The request is sent anonymously.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	body := map[string]string{"email": email, "password": password}
	token, id, err := c.authRequest(ctx, "/api/v1/auth/login", body)
	if err != nil {
		return "", nil, fmt.Errorf("client.Login: %w", err)
	}
	return token, id, nil
}

// Register creates an account and returns the issued token and identity.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, *domain.Identity, error) {
	token, id, err := c.authRequest(ctx, "/api/v1/auth/register", req)
	if err != nil {
		return "", nil, fmt.Errorf("client.Register: %w", err)
	}
	return token, id, nil
}

// GetMe returns the authenticated identity.
func (c *Client) GetMe(ctx context.Context) (*domain.Identity, error) {
	var id domain.Identity
	if err := c.get(ctx, "/api/v1/users/me", &id); err != nil {
		return nil, fmt.Errorf("client.GetMe: %w", err)
	}
	return &id, nil
}

// UpdateMe applies a partial profile update and returns the updated identity.
func (c *Client) UpdateMe(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
	var id domain.Identity
	if err := c.patch(ctx, "/api/v1/users/me", patch, &id); err != nil {
		return nil, fmt.Errorf("client.UpdateMe: %w", err)
	}
	return &id, nil
}

// GetPortfolio returns the dashboard summary for the authenticated investor.
func (c *Client) GetPortfolio(ctx context.Context) (*domain.PortfolioSummary, error) {
	var p domain.PortfolioSummary
	if err := c.get(ctx, "/api/v1/portfolio", &p); err != nil {
		return nil, fmt.Errorf("client.GetPortfolio: %w", err)
	}
	return &p, nil
}

// ListInvestments fetches the investor's own investments.
func (c *Client) ListInvestments(ctx context.Context, limit, offset int) ([]domain.Investment, error) {
	var invs []domain.Investment
	if err := c.get(ctx, "/api/v1/investments?"+pageParams(limit, offset), &invs); err != nil {
		return nil, fmt.Errorf("client.ListInvestments: %w", err)
	}
	return invs, nil
}

// CreateInvestment opens a new investment.
func (c *Client) CreateInvestment(ctx context.Context, req CreateInvestmentRequest) (*domain.Investment, error) {
	var inv domain.Investment
	if err := c.post(ctx, "/api/v1/investments", req, &inv); err != nil {
		return nil, fmt.Errorf("client.CreateInvestment: %w", err)
	}
	return &inv, nil
}

// ListTransactions fetches the investor's account ledger.
func (c *Client) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.get(ctx, "/api/v1/transactions?"+pageParams(limit, offset), &txs); err != nil {
		return nil, fmt.Errorf("client.ListTransactions: %w", err)
	}
	return txs, nil
}

// GetReferral returns the investor's referral code and referred accounts.
func (c *Client) GetReferral(ctx context.Context) (*domain.Referral, error) {
	var ref domain.Referral
	if err := c.get(ctx, "/api/v1/referrals", &ref); err != nil {
		return nil, fmt.Errorf("client.GetReferral: %w", err)
	}
	return &ref, nil
}

// ListRewards fetches the investor's reward point entries.
func (c *Client) ListRewards(ctx context.Context, limit, offset int) ([]domain.Reward, error) {
	var rewards []domain.Reward
	if err := c.get(ctx, "/api/v1/rewards?"+pageParams(limit, offset), &rewards); err != nil {
		return nil, fmt.Errorf("client.ListRewards: %w", err)
	}
	return rewards, nil
}

// --- Admin methods ---

// ListUsers fetches all platform users. Requires an admin role server-side.
func (c *Client) ListUsers(ctx context.Context, limit, offset int) ([]domain.Identity, error) {
	var users []domain.Identity
	if err := c.get(ctx, "/api/v1/admin/users?"+pageParams(limit, offset), &users); err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return users, nil
}

// SetUserActive activates or deactivates a user account.
func (c *Client) SetUserActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	if err := c.patch(ctx, "/api/v1/admin/users/"+url.PathEscape(id), body, nil); err != nil {
		return fmt.Errorf("client.SetUserActive: %w", err)
	}
	return nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/api/v1/admin/users/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("client.DeleteUser: %w", err)
	}
	return nil
}

// ListAllInvestments fetches every investment on the platform.
func (c *Client) ListAllInvestments(ctx context.Context, limit, offset int) ([]domain.Investment, error) {
	var invs []domain.Investment
	if err := c.get(ctx, "/api/v1/admin/investments?"+pageParams(limit, offset), &invs); err != nil {
		return nil, fmt.Errorf("client.ListAllInvestments: %w", err)
	}
	return invs, nil
}

// UpdateInvestmentStatus moves an investment to a new lifecycle status.
func (c *Client) UpdateInvestmentStatus(ctx context.Context, id string, status domain.InvestmentStatus) error {
	body := map[string]string{"status": string(status)}
	if err := c.put(ctx, "/api/v1/admin/investments/"+url.PathEscape(id)+"/status", body, nil); err != nil {
		return fmt.Errorf("client.UpdateInvestmentStatus: %w", err)
	}
	return nil
}

// envelope is the server's response wrapper: a success envelope carries the
// payload under data, user, or users; an error envelope carries message.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	Users   json.RawMessage `json:"users"`
}

// payload returns whichever payload key the server populated.
func (e *envelope) payload() json.RawMessage {
	switch {
	case len(e.Data) > 0:
		return e.Data
	case len(e.User) > 0:
		return e.User
	case len(e.Users) > 0:
		return e.Users
	}
	return nil
}

// authRequest posts credentials and decodes the token + user pair.
func (c *Client) authRequest(ctx context.Context, path string, body any) (string, *domain.Identity, error) {
	env, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", nil, err
	}
	if env.Token == "" || len(env.User) == 0 {
		return "", nil, fmt.Errorf("decode response: missing token or user")
	}
	var id domain.Identity
	if err := json.Unmarshal(env.User, &id); err != nil {
		return "", nil, fmt.Errorf("decode response: %w", err)
	}
	return env.Token, &id, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}

// request dispatches a verb and unmarshals the envelope payload into out.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	env, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	payload := env.payload()
	if payload == nil {
		return fmt.Errorf("decode response: empty payload")
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode == http.StatusUnauthorized {
		msg := readErrorMessage(resp.Body)
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return nil, &AuthError{Message: msg}
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}

// readErrorMessage pulls the message field from an error envelope, falling
// back to the raw body.
func readErrorMessage(r io.Reader) string {
	respBody, err := io.ReadAll(io.LimitReader(r, 1<<20)) // 1 MB max error body
	if err != nil {
		return fmt.Sprintf("failed to read body: %v", err)
	}
	var env envelope
	if json.Unmarshal(respBody, &env) == nil && env.Message != "" {
		return env.Message
	}
	return string(respBody)
}

func pageParams(limit, offset int) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	return params.Encode()
}
