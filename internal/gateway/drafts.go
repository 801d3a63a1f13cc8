package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newsportal.dev/editor-console/internal/metrics"
)

// ListDrafts fetches the filtered draft list from the gateway. Row order is
// whatever the gateway returns.
func (c *Client) ListDrafts(ctx context.Context) ([]Draft, error) {
	query := url.Values{}
	query.Set("status", c.status)
	query.Set("min_score", strconv.FormatFloat(c.minScore, 'f', -1, 64))

	listURL := c.baseURL + "/v1/editor/drafts?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	fetchStart := time.Now()
	resp, err := c.httpClient.Do(req)
	fetchDuration := time.Since(fetchStart)

	if err != nil {
		metrics.RecordGatewayCall("list_drafts", "error", fetchDuration)
		return nil, fmt.Errorf("failed to fetch drafts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordGatewayCall("list_drafts", "error", fetchDuration)
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	metrics.RecordGatewayCall("list_drafts", "success", fetchDuration)

	var drafts []Draft
	err = json.NewDecoder(resp.Body).Decode(&drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode drafts: %w", err)
	}

	return drafts, nil
}

// FindDraft locates a single draft by ID. The gateway exposes no single-draft
// endpoint, so this re-fetches the filtered list and searches it. A fetch
// that succeeds but contains no matching ID is a lookup miss, not an error:
// the second return value is false and the error is nil.
func (c *Client) FindDraft(ctx context.Context, id int) (*Draft, bool, error) {
	drafts, err := c.ListDrafts(ctx)
	if err != nil {
		return nil, false, err
	}

	for i := range drafts {
		if drafts[i].ID == id {
			return &drafts[i], true, nil
		}
	}

	return nil, false, nil
}

// ApprovePost marks a draft as approved for publication
func (c *Client) ApprovePost(ctx context.Context, id int) error {
	return c.postAction(ctx, "approve", "/v1/post/approve", approveRequest{PostID: id})
}

// PublishPost publishes an approved draft to the fixed channel set
func (c *Client) PublishPost(ctx context.Context, id int) error {
	return c.postAction(ctx, "publish", "/v1/post/publish", publishRequest{
		PostID:   id,
		Channels: PublishChannels,
	})
}

func (c *Client) postAction(ctx context.Context, operation, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	callStart := time.Now()
	resp, err := c.httpClient.Do(req)
	callDuration := time.Since(callStart)

	if err != nil {
		metrics.RecordGatewayCall(operation, "error", callDuration)
		return fmt.Errorf("failed to call %s: %w", operation, err)
	}
	defer resp.Body.Close()

	// Response body is not inspected, only the status
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		metrics.RecordGatewayCall(operation, "error", callDuration)
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	metrics.RecordGatewayCall(operation, "success", callDuration)
	return nil
}
