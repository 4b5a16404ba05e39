package luxoraapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-LuxoraClient/pkg/metrics"
)

// Client клиент для работы с REST API Luxora
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials CredentialStore
	metrics     MetricsRecorder
	log         Logger
	// allowSeeding false в production: POST /rooms/init-sample-data не отправляется
	allowSeeding bool
}

// ClientOption настройка клиента
type ClientOption func(*Client)

// WithMetrics включает учет запросов в Prometheus
func WithMetrics(m MetricsRecorder) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSeedingAllowed разрешает заполнение тестовыми данными (не production)
func WithSeedingAllowed(allowed bool) ClientOption {
	return func(c *Client) {
		c.allowSeeding = allowed
	}
}

// NewClient создает новый экземпляр клиента.
// timeout = 0 означает отсутствие таймаута: запрос ограничен только контекстом вызывающего.
func NewClient(baseURL string, timeout time.Duration, credentials CredentialStore, log Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials: credentials,
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestOptions struct {
	headers map[string]string
	route   string
}

// RequestOption параметр отдельного запроса
type RequestOption func(*requestOptions)

// WithHeader добавляет заголовок поверх стандартных
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithRoute задает шаблон пути для метрик (например, "/bookings/{id}/cancel")
func WithRoute(route string) RequestOption {
	return func(o *requestOptions) {
		o.route = route
	}
}

// Request выполняет один запрос без повторов.
// 204 No Content оставляет out без изменений. Не 2xx статус возвращается как *RequestError.
func (c *Client) Request(ctx context.Context, method, path string, body any, out any, opts ...RequestOption) error {
	ro := &requestOptions{
		headers: map[string]string{"Content-Type": "application/json"},
		route:   path,
	}
	for _, opt := range opts {
		opt(ro)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	for key, value := range ro.headers {
		req.Header.Set(key, value)
	}

	if token := c.currentCredential(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, ro.route, metrics.StatusTransportError, started)
		c.log.Warn("%s %s - transport error: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.observe(method, ro.route, statusClass(resp.StatusCode), started)

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := newRequestError(resp.StatusCode, isJSON, parseBody(raw, isJSON))
		c.log.Warn("%s %s - backend rejected request: status=%d, message=%s", method, path, resp.StatusCode, reqErr.Message)
		return reqErr
	}

	if out == nil {
		return nil
	}

	if !isJSON {
		if text, ok := out.(*string); ok {
			*text = string(raw)
			return nil
		}
		return fmt.Errorf("%w: expected JSON, got content-type %q", ErrInvalidResponse, resp.Header.Get("Content-Type"))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) currentCredential(ctx context.Context) string {
	if c.credentials == nil {
		return ""
	}
	token, ok, err := c.credentials.Credential(ctx)
	if err != nil {
		c.log.Warn("failed to read stored credential, sending request without it: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

func (c *Client) observe(method, route, status string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBackendRequest(method, route, status, time.Since(started))
}

// parseBody возвращает разобранный JSON (nil при ошибке разбора) или текст
func parseBody(raw []byte, isJSON bool) any {
	if !isJSON {
		return string(raw)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
