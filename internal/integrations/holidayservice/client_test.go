package holidayservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetHolidays_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidays", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["2025-01-01","2025-03-01","2025-05-05"]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	set, err := client.GetHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains("2025-03-01"))
	assert.False(t, set.Contains("2025-03-02"))
}

func TestGetHolidays_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetHolidays(context.Background(), 2025)
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestGetHolidays_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetHolidays(context.Background(), 2025)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetHolidaysWithFallback_UsesCache(t *testing.T) {
	var failing atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`["2025-01-01","2025-08-15"]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	// Первый запрос успешен и кешируется
	set := client.GetHolidaysWithFallback(context.Background(), 2025)
	require.Len(t, set, 2)

	// Источник упал: отдаём последний успешный ответ
	failing.Store(true)
	set = client.GetHolidaysWithFallback(context.Background(), 2025)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains("2025-08-15"))
}

func TestGetHolidaysWithFallback_DefaultSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	// Кеша нет: минимальный безопасный набор - только 1 января
	set := client.GetHolidaysWithFallback(context.Background(), 2025)
	require.Len(t, set, 1)
	assert.True(t, set.Contains("2025-01-01"))
}

func TestGetHolidaysWithFallback_NeverPanics(t *testing.T) {
	// Недостижимый адрес: сетевые ошибки тоже деградируют мягко
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	set := client.GetHolidaysWithFallback(context.Background(), 2026)
	assert.True(t, set.Contains("2026-01-01"))
}
