package webhook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

// DefaultBaseURL is the endpoint prefix an incoming webhook key is
// appended to.
const DefaultBaseURL = "https://hooks.slack.com/services"

// successBody is the exact response body of an accepted delivery.
const successBody = "ok"

// Client posts messages to incoming webhooks.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the webhook endpoint prefix.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the request timeout on the client in use.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a webhook client
func New(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Post delivers msg to the webhook identified by key. The endpoint
// acknowledges an accepted payload with the body "ok"; any other body
// means the payload was rejected and Post returns false without error.
// A non-nil error covers invalid input and transport failures only.
func (c *Client) Post(ctx context.Context, key model.WebhookKey, msg *model.Message) (bool, error) {
	logger := ctxlog.From(ctx)

	if key == "" {
		return false, domain.ErrInvalidArgument.Wrap(goerr.New("webhook key is required"))
	}
	if msg == nil {
		return false, domain.ErrInvalidArgument.Wrap(goerr.New("message is required"))
	}
	if err := msg.Validate(); err != nil {
		return false, err
	}

	payload, err := msg.Payload()
	if err != nil {
		return false, err
	}

	logger.Debug("posting to webhook",
		slog.String("key", key.Masked()),
		slog.String("channel", msg.Channel),
		slog.String("payload", string(payload)),
	)

	form := url.Values{"payload": {string(payload)}}
	endpoint := c.baseURL + "/" + string(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, domain.ErrInvalidArgument.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, domain.ErrNetwork.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, domain.ErrNetwork.Wrap(err)
	}

	if string(body) != successBody {
		logger.Debug("webhook rejected the payload",
			slog.String("key", key.Masked()),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return false, nil
	}

	logger.Debug("webhook accepted the payload",
		slog.String("key", key.Masked()),
		slog.Int("status", resp.StatusCode),
	)
	return true, nil
}
