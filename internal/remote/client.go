// Package remote talks to the Place Between backend API.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/pkg/entity"
)

const (
	completePath   = "/api/activities/complete"
	activitiesPath = "/api/activities"
	emotionsPath   = "/api/emotions"
	checkinPath    = "/api/emotions/checkin"
	mirrorPath     = "/api/mirror/today"
)

// Client makes single-attempt calls bounded by the request context and the
// configured timeout.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New returns a client for baseURL. An empty baseURL yields a client whose
// calls fail with ErrBackendNotConfigured.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c, baseURL: baseURL}
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

type errorBody struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if !c.Configured() {
		return errorvalues.ErrBackendNotConfigured
	}
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", errorvalues.ErrRemoteUnavailable, method, path, err)
	}
	if resp.IsError() {
		var eb errorBody
		_ = sonic.Unmarshal(resp.Body(), &eb)
		msg := eb.Msg
		if msg == "" {
			msg = eb.Message
		}
		if resp.StatusCode() == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", errorvalues.ErrAuthRequired, msg)
		}
		return fmt.Errorf("%w: %s %s: status %d: %s", errorvalues.ErrRemoteUnavailable, method, path, resp.StatusCode(), msg)
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", errorvalues.ErrRemoteUnavailable, path, err)
	}
	return nil
}

func (c *Client) SubmitCompletion(ctx context.Context, token string, req *entity.RemoteCompletionRequest) (*entity.RemoteResult, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	var res entity.RemoteResult
	if err := c.do(ctx, http.MethodPost, completePath, token, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListActivities(ctx context.Context, token string) ([]entity.RemoteActivity, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	var list []entity.RemoteActivity
	if err := c.do(ctx, http.MethodGet, activitiesPath, token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListEmotions(ctx context.Context) ([]entity.Emotion, error) {
	var list []entity.Emotion
	if err := c.do(ctx, http.MethodGet, emotionsPath, "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Checkin(ctx context.Context, token string, req *entity.CheckinRequest) (*entity.EmotionCheckin, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	var res entity.EmotionCheckin
	if err := c.do(ctx, http.MethodPost, checkinPath, token, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DailySummary(ctx context.Context, token string) (*entity.DailySummary, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	var res entity.DailySummary
	if err := c.do(ctx, http.MethodGet, mirrorPath, token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
