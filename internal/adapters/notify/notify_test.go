package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/adapters/notify"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestGithubWorkflowDispatcher_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := notify.NewGithubWorkflowDispatcher(context.Background(), notify.GithubWorkflowConfig{
		Token:    "ghp_test",
		Owner:    "acme",
		Repo:     "notifications",
		Workflow: "process-notifications.yml",
		BaseURL:  server.URL,
	})

	err := d.Dispatch(context.Background(), domain.Notification{NotificationID: "n-1"})

	require.NoError(t, err)
	assert.Equal(t, "github", d.Name())
	assert.Equal(t, "/repos/acme/notifications/actions/workflows/process-notifications.yml/dispatches", gotPath)
	assert.Equal(t, "Bearer ghp_test", gotAuth)
	assert.Equal(t, map[string]string{"ref": "main"}, gotBody)
}

func TestGithubWorkflowDispatcher_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"No ref found for: nope"}`))
	}))
	defer server.Close()

	d := notify.NewGithubWorkflowDispatcher(context.Background(), notify.GithubWorkflowConfig{
		Token: "t", Owner: "o", Repo: "r", Workflow: "w.yml", Ref: "nope", BaseURL: server.URL,
	})

	err := d.Dispatch(context.Background(), domain.Notification{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "No ref found for: nope")
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestEmailDispatcher(t *testing.T) {
	sender := &fakeSender{}
	d := notify.NewEmailDispatcherWithSender(notify.EmailConfig{
		From: "till@example.com",
		To:   []string{"manager@example.com", "owner@example.com"},
	}, sender)

	n := domain.Notification{Title: "Shift closed", Message: "Collected cash: $1150.00.", CreatedAt: time.Now()}
	require.NoError(t, d.Dispatch(context.Background(), n))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"Shift closed"}, sender.sent[0].GetHeader("Subject"))
	assert.Equal(t, []string{"manager@example.com", "owner@example.com"}, sender.sent[0].GetHeader("To"))

	sender.err = errors.New("relay refused")
	assert.ErrorContains(t, d.Dispatch(context.Background(), n), "relay refused")

	empty := notify.NewEmailDispatcherWithSender(notify.EmailConfig{From: "till@example.com"}, sender)
	assert.Error(t, empty.Dispatch(context.Background(), n))
}
