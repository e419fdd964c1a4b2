// Package apiclient is a typed HTTP client for the LaunchCheck REST API.
// It satisfies the mutator interface the optimistic controller consumes.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/models"
)

// doer abstracts the HTTP client, enabling test mocks.
type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the LaunchCheck API.
type Client struct {
	baseURL string
	http    doer
}

// Opts holds parameters for creating a Client.
type Opts struct {
	BaseURL string // e.g. "http://localhost:8080"
	// For testing: inject a mock HTTP client.
	HTTPClient doer
}

// New creates a Client.
func New(opts Opts) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("apiclient: base URL is required")
	}
	c := opts.HTTPClient
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(opts.BaseURL, "/"), http: c}, nil
}

// envelope is the API response shell shared by all endpoints.
type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Projects json.RawMessage `json:"projects"`
	Project  json.RawMessage `json:"project"`
	Error    string          `json:"error"`
	Message  string          `json:"message"`
}

// do issues a request and decodes the envelope, translating failure
// responses into the shared error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("apiclient: decode response for %s %s: %w", method, path, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return nil, apperrors.Validationf("%s", msg)
		case http.StatusNotFound:
			return nil, fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
		case http.StatusConflict:
			return nil, apperrors.Conflictf("%s", msg)
		default:
			return nil, fmt.Errorf("apiclient: %s %s: %s", method, path, msg)
		}
	}
	return &env, nil
}

// GetItem fetches a checklist item with its template join fields.
func (c *Client) GetItem(ctx context.Context, id string) (*models.ChecklistItemInstance, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/checklist-items/"+id, nil)
	if err != nil {
		return nil, err
	}
	var item models.ChecklistItemInstance
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, fmt.Errorf("apiclient: decode item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to a checklist item. It implements
// the optimistic controller's mutator interface.
func (c *Client) UpdateItem(ctx context.Context, id string, upd checklist.ItemUpdate) (*models.ChecklistItemInstance, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/checklist-items/"+id, upd)
	if err != nil {
		return nil, err
	}
	var item models.ChecklistItemInstance
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, fmt.Errorf("apiclient: decode item: %w", err)
	}
	return &item, nil
}

// ListProjects returns all projects with progress summaries.
func (c *Client) ListProjects(ctx context.Context) ([]checklist.ProjectSummary, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/projects", nil)
	if err != nil {
		return nil, err
	}
	var projects []checklist.ProjectSummary
	if err := json.Unmarshal(env.Projects, &projects); err != nil {
		return nil, fmt.Errorf("apiclient: decode projects: %w", err)
	}
	return projects, nil
}

// CreateProjectRequest is the body for CreateProject.
type CreateProjectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName,omitempty"`
	Domain     string `json:"domain,omitempty"`
	Status     string `json:"status,omitempty"`
	LaunchDate string `json:"launchDate,omitempty"`
}

// CreateProject creates a project with materialized checklists.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*checklist.ProjectSummary, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/projects/create", req)
	if err != nil {
		return nil, err
	}
	var project checklist.ProjectSummary
	if err := json.Unmarshal(env.Project, &project); err != nil {
		return nil, fmt.Errorf("apiclient: decode project: %w", err)
	}
	return &project, nil
}

// GetProject fetches a project with its checklist instances and items.
func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := json.Unmarshal(env.Data, &project); err != nil {
		return nil, fmt.Errorf("apiclient: decode project: %w", err)
	}
	return &project, nil
}

// UpdateProject applies non-empty fields to a project.
func (c *Client) UpdateProject(ctx context.Context, id string, req CreateProjectRequest) (*models.Project, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/projects/"+id, req)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := json.Unmarshal(env.Data, &project); err != nil {
		return nil, fmt.Errorf("apiclient: decode project: %w", err)
	}
	return &project, nil
}

// DeleteProject removes a project and its checklists.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil)
	return err
}

// ListTemplates returns all templates with their items.
func (c *Client) ListTemplates(ctx context.Context) ([]models.ChecklistTemplate, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/templates", nil)
	if err != nil {
		return nil, err
	}
	var templates []models.ChecklistTemplate
	if err := json.Unmarshal(env.Data, &templates); err != nil {
		return nil, fmt.Errorf("apiclient: decode templates: %w", err)
	}
	return templates, nil
}

// CreateTemplateRequest is the body for CreateTemplate.
type CreateTemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

// CreateTemplate creates an empty active template.
func (c *Client) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*models.ChecklistTemplate, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/templates/create", req)
	if err != nil {
		return nil, err
	}
	var tmpl models.ChecklistTemplate
	if err := json.Unmarshal(env.Data, &tmpl); err != nil {
		return nil, fmt.Errorf("apiclient: decode template: %w", err)
	}
	return &tmpl, nil
}
