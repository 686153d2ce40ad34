package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Имена событий уведомлений
const (
	EventLogin            = "login"
	EventProfileUpdated   = "profile-updated"
	EventConsultSubmitted = "consult-submitted"
	EventConsultConfirmed = "consult-confirmed"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений.
// Доставка fire-and-forget с ограниченным таймаутом, без ретраев.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет событие с JSON-payload в POST /notify/<event>
func (c *Client) Send(ctx context.Context, event string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/notify/%s", c.baseURL, event)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: event=%s: %v", ErrNotificationFailed, event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: event=%s, status=%d", ErrNotificationFailed, event, resp.StatusCode)
	}

	return nil
}

// SendBestEffort отправляет событие, глотая ошибку.
// Неудача логируется и никогда не влияет на вызвавший переход состояния.
func (c *Client) SendBestEffort(ctx context.Context, event string, payload map[string]interface{}) {
	if err := c.Send(ctx, event, payload); err != nil {
		c.log.Warn("Notification delivery failed (ignored): %v", err)
		return
	}
	c.log.Info("Notification sent: event=%s", event)
}
