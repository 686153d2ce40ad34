package holidayservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего источника праздничных дней (KR)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	// Кеш успешных ответов по годам. Единственная точка конкурентного
	// доступа в сервисе: календарь и создание заявки читают параллельно.
	mu    sync.RWMutex
	cache map[int]HolidaySet
}

// NewClient создает новый экземпляр клиента источника праздников
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:   log,
		cache: make(map[int]HolidaySet),
	}
}

// GetHolidays запрашивает список нерабочих дат за год.
// Успешный ответ кешируется для повторного использования.
func (c *Client) GetHolidays(ctx context.Context, year int) (HolidaySet, error) {
	url := fmt.Sprintf("%s/holidays?year=%d", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var dates []string
	if err := json.NewDecoder(resp.Body).Decode(&dates); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	set := NewHolidaySet(dates)

	c.mu.Lock()
	c.cache[year] = set
	c.mu.Unlock()

	return set, nil
}

// GetHolidaysWithFallback получает праздники с graceful degradation.
// При недоступности источника возвращает последний успешный ответ за
// этот год, а если его нет - минимальный безопасный набор (1 января).
// Расчёт календаря никогда не падает из-за внешнего источника.
func (c *Client) GetHolidaysWithFallback(ctx context.Context, year int) HolidaySet {
	set, err := c.GetHolidays(ctx, year)
	if err == nil {
		return set
	}

	c.log.Error("Holiday provider unavailable for year=%d, applying fallback: %v", year, err)

	c.mu.RLock()
	cached, ok := c.cache[year]
	c.mu.RUnlock()
	if ok {
		c.log.Info("Using cached holidays for year=%d (%d dates)", year, len(cached))
		return cached
	}

	// Минимальный консервативный набор
	return NewHolidaySet([]string{fmt.Sprintf("%d-01-01", year)})
}
