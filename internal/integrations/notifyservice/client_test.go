package notifyservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSend_Success(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	err := client.Send(context.Background(), EventConsultSubmitted, map[string]interface{}{
		"email": "user-1",
		"type":  "phone",
	})

	require.NoError(t, err)
	assert.Equal(t, "/notify/consult-submitted", gotPath)
	assert.Equal(t, "user-1", gotPayload["email"])
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	err := client.Send(context.Background(), EventLogin, nil)
	require.ErrorIs(t, err, ErrNotificationFailed)
}

func TestSend_NetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	err := client.Send(context.Background(), EventConsultConfirmed, nil)
	require.ErrorIs(t, err, ErrNotificationFailed)
}

func TestSendBestEffort_SwallowsFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	// Не должно ни паниковать, ни возвращать ошибку
	client.SendBestEffort(context.Background(), EventProfileUpdated, map[string]interface{}{"email": "u"})
}
