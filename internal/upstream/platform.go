package upstream

import (
	"context"
	"net/url"
)

// Workspaces lists all workspaces
func (client *Client) Workspaces(ctx context.Context, token string) (*Result, error) {
	return client.Get(ctx, token, "/workspaces/", nil)
}

// Workspace retrieves a single workspace
func (client *Client) Workspace(ctx context.Context, token, id string) (*Result, error) {
	return client.Get(ctx, token, "/workspaces/"+url.PathEscape(id), nil)
}

// Documents lists the documents of a workspace.
// The first page is requested with the maximum page size the platform allows.
func (client *Client) Documents(ctx context.Context, token, workspaceID string) (*Result, error) {
	return client.Get(ctx, token, "/documents", url.Values{
		"workspaceId": {workspaceID},
		"pageIndex":   {"1"},
		"limit":       {"100"},
	})
}

// ImportJob retrieves the status of a document import job
func (client *Client) ImportJob(ctx context.Context, token, jobID string) (*Result, error) {
	return client.Get(ctx, token, "/documents/import/jobs/"+url.PathEscape(jobID), nil)
}

// Indices lists the indices of a workspace
func (client *Client) Indices(ctx context.Context, token, workspaceID string) (*Result, error) {
	return client.Get(ctx, token, "/index", url.Values{"workspaceId": {workspaceID}})
}

// Index retrieves a single index
func (client *Client) Index(ctx context.Context, token, id string) (*Result, error) {
	return client.Get(ctx, token, "/index/"+url.PathEscape(id), nil)
}

// CreateIndex creates a new index in a workspace
func (client *Client) CreateIndex(ctx context.Context, token, workspaceID string, body []byte) (*Result, error) {
	return client.PostJSON(ctx, token, "/index", url.Values{"workspaceId": {workspaceID}}, body)
}

// DeleteIndex deletes an index
func (client *Client) DeleteIndex(ctx context.Context, token, id string) (*Result, error) {
	return client.Delete(ctx, token, "/index/"+url.PathEscape(id))
}
