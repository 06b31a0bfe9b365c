// Package notify delivers stored notifications to the outside world.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"golang.org/x/oauth2"
)

// DefaultGithubAPI is the public GitHub REST endpoint.
const DefaultGithubAPI = "https://api.github.com"

// GithubWorkflowConfig identifies the workflow that processes pending notifications.
type GithubWorkflowConfig struct {
	Token    string
	Owner    string
	Repo     string
	Workflow string // workflow file name, e.g. notify.yml
	Ref      string
	BaseURL  string // defaults to DefaultGithubAPI
}

// GithubWorkflowDispatcher triggers a workflow_dispatch run. The workflow reads
// pending notifications itself, so only the ref is sent.
type GithubWorkflowDispatcher struct {
	client *http.Client
	cfg    GithubWorkflowConfig
}

var _ portssvc.NotificationDispatcher = (*GithubWorkflowDispatcher)(nil)

// NewGithubWorkflowDispatcher builds a dispatcher whose requests carry the token as a bearer credential.
func NewGithubWorkflowDispatcher(ctx context.Context, cfg GithubWorkflowConfig) *GithubWorkflowDispatcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGithubAPI
	}
	if cfg.Ref == "" {
		cfg.Ref = "main"
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}))
	return &GithubWorkflowDispatcher{client: client, cfg: cfg}
}

func (d *GithubWorkflowDispatcher) Name() string {
	return "github"
}

func (d *GithubWorkflowDispatcher) Dispatch(ctx context.Context, _ domain.Notification) error {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/dispatches",
		d.cfg.BaseURL, url.PathEscape(d.cfg.Owner), url.PathEscape(d.cfg.Repo), url.PathEscape(d.cfg.Workflow))

	body, err := json.Marshal(map[string]string{"ref": d.cfg.Ref})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("github workflow dispatch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("github API error %d: %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("github API error %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
}
