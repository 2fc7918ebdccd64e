package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exampartner/cli/internal/question"
)

// adminKeyHeader carries the operator-entered admin secret on admin calls.
const adminKeyHeader = "x-admin-key"

// Health pings the backend and returns the reported service name.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Service string `json:"service"`
	}
	if err := c.get(ctx, "/health", &out, nil); err != nil {
		return "", err
	}
	return out.Service, nil
}

// Register creates an account and returns a fresh token.
func (c *Client) Register(ctx context.Context, identifier, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"identifier": identifier, "password": password}
	if err := c.post(ctx, "/auth/register", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"identifier": identifier, "password": password}
	if err := c.post(ctx, "/auth/login", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile for the current token.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/me", &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetEmail saves a receipt email on the profile.
func (c *Client) SetEmail(ctx context.Context, email string) error {
	return c.post(ctx, "/me/email", map[string]string{"email": email}, nil, nil)
}

// Filters fetches the valid filter values, narrowed by any non-empty
// qtype/exam/year arguments (year 0 means unset).
func (c *Client) Filters(ctx context.Context, qtype, exam string, year int) (*FilterValues, error) {
	q := url.Values{}
	if qtype != "" {
		q.Set("qtype", qtype)
	}
	if exam != "" {
		q.Set("exam", exam)
	}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	path := "/filters"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out FilterValues
	if err := c.get(ctx, path, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Questions fetches one list page. exam/year/subject scope the query;
// empty strings mean no constraint. A paywall signal, HTTP 402 or an
// explicit flag in a 200 body, is returned as ErrPaywall.
func (c *Client) Questions(ctx context.Context, mode string, limit, offset int, exam, year, subject string) ([]QuestionSummary, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if exam != "" {
		q.Set("exam", exam)
	}
	if year != "" {
		q.Set("year", year)
	}
	if subject != "" {
		q.Set("subject", subject)
	}

	raw, err := c.do(ctx, "GET", "/questions/"+url.PathEscape(mode)+"?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Paywall bool              `json:"paywall"`
		Items   []QuestionSummary `json:"items"`
	}
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	if out.Paywall {
		return nil, ErrPaywall
	}
	return out.Items, nil
}

// Question fetches a full question record and validates its shape.
func (c *Client) Question(ctx context.Context, id string) (*question.Question, error) {
	raw, err := c.do(ctx, "GET", "/question/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return question.Parse(raw)
}

// PaymentPublicKey fetches the checkout publishable key.
func (c *Client) PaymentPublicKey(ctx context.Context) (string, error) {
	var out struct {
		OK        bool   `json:"ok"`
		PublicKey string `json:"public_key"`
	}
	if err := c.get(ctx, "/payments/public-key", &out, nil); err != nil {
		return "", err
	}
	if !out.OK || out.PublicKey == "" {
		return "", fmt.Errorf("backend returned no public key")
	}
	return out.PublicKey, nil
}

// VerifyPayment asks the backend to verify a checkout reference. The
// widget's own success callback is never trusted without this call.
func (c *Client) VerifyPayment(ctx context.Context, reference, email string) (*VerifyResult, error) {
	var out VerifyResult
	body := map[string]string{"reference": reference, "email": email}
	if err := c.post(ctx, "/payments/verify", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentHistory lists past payments, newest first.
func (c *Client) PaymentHistory(ctx context.Context, limit int) ([]PaymentRecord, error) {
	var out struct {
		Items []PaymentRecord `json:"items"`
	}
	path := "/payments/history?limit=" + strconv.Itoa(limit)
	if err := c.get(ctx, path, &out, nil); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AdminReconcile re-checks a payment reference against the provider.
func (c *Client) AdminReconcile(ctx context.Context, adminKey, reference string) (*ReconcileResult, error) {
	var out ReconcileResult
	hdr := map[string]string{adminKeyHeader: adminKey}
	if err := c.post(ctx, "/admin/reconcile/"+url.PathEscape(reference), nil, &out, hdr); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminRefund queues a refund for a payment reference.
func (c *Client) AdminRefund(ctx context.Context, adminKey string, req RefundRequest) error {
	hdr := map[string]string{adminKeyHeader: adminKey}
	return c.post(ctx, "/admin/refund", req, nil, hdr)
}

// AdminAudit fetches the most recent audit log entries.
func (c *Client) AdminAudit(ctx context.Context, adminKey string, limit int) ([]AuditEntry, error) {
	var out struct {
		OK    bool         `json:"ok"`
		Items []AuditEntry `json:"items"`
	}
	hdr := map[string]string{adminKeyHeader: adminKey}
	path := "/admin/audit?limit=" + strconv.Itoa(limit)
	if err := c.get(ctx, path, &out, hdr); err != nil {
		return nil, err
	}
	return out.Items, nil
}
