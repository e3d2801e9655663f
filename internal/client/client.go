package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/pkg/requestid"
)

// FeedRateClient is an HTTP client for the feed rate API
type FeedRateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFeedRateClient(baseURL string, timeout time.Duration) *FeedRateClient {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &FeedRateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non 2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("feed rate service returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("feed rate service returned status %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
}

// Chart is a downloaded feed chart.
type Chart struct {
	ContentType string
	Filename    string
	Content     []byte
}

func (c *FeedRateClient) Calculate(ctx context.Context, req v1alpha1.CalculateRequest) (*v1alpha1.Calculation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/calculate", nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var calc v1alpha1.Calculation
	if err := json.Unmarshal(resp, &calc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &calc, nil
}

func (c *FeedRateClient) Options(ctx context.Context) (*v1alpha1.Options, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/options", nil, nil)
	if err != nil {
		return nil, err
	}

	var opts v1alpha1.Options
	if err := json.Unmarshal(resp, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &opts, nil
}

func (c *FeedRateClient) Chart(ctx context.Context, params v1alpha1.GetChartParams) (*Chart, error) {
	httpResp, err := c.send(ctx, http.MethodGet, "/api/v1/chart", chartQuery(params), nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	content, err := readBody(httpResp)
	if err != nil {
		return nil, err
	}

	chart := &Chart{
		ContentType: httpResp.Header.Get("Content-Type"),
		Content:     content,
	}
	if _, dispParams, err := mime.ParseMediaType(httpResp.Header.Get("Content-Disposition")); err == nil {
		chart.Filename = dispParams["filename"]
	}
	return chart, nil
}

func (c *FeedRateClient) Info(ctx context.Context) (*v1alpha1.Info, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/info", nil, nil)
	if err != nil {
		return nil, err
	}

	var info v1alpha1.Info
	if err := json.Unmarshal(resp, &info); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &info, nil
}

func (c *FeedRateClient) HealthCheck(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	return err
}

func chartQuery(p v1alpha1.GetChartParams) url.Values {
	q := url.Values{}
	setString := func(name string, v *string) {
		if v != nil {
			q.Set(name, *v)
		}
	}
	setFloat := func(name string, v *float64) {
		if v != nil {
			q.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}

	setString("machine", p.Machine)
	setString("cutter", p.Cutter)
	setString("aggression", p.Aggression)
	setString("unit", p.Unit)
	if p.Flutes != nil {
		q.Set("flutes", strconv.Itoa(*p.Flutes))
	}
	if p.Format != nil {
		q.Set("format", string(*p.Format))
	}
	setFloat("rpmFrom", p.RpmFrom)
	setFloat("rpmTo", p.RpmTo)
	setFloat("rpmStep", p.RpmStep)
	return q
}

func (c *FeedRateClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader) ([]byte, error) {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return readBody(resp)
}

func (c *FeedRateClient) send(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	id := requestid.FromContext(ctx)
	if id == "" {
		id = requestid.Generate()
	}
	httpReq.Header.Set(requestid.Header, id)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call feed rate service: %w", err)
	}
	return resp, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(bodyBytes))}
		var payload v1alpha1.Error
		if err := json.Unmarshal(bodyBytes, &payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			if payload.RequestId != nil {
				apiErr.RequestID = *payload.RequestId
			}
		}
		return nil, apiErr
	}
	return bodyBytes, nil
}

// IsBadRequest reports whether err is the API rejecting a selection.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}
