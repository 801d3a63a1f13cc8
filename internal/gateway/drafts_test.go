package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsportal.dev/editor-console/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.Config{
		GatewayBaseURL: baseURL,
		GatewayTimeout: 5 * time.Second,
		DraftsStatus:   "in_review",
		DraftsMinScore: 0,
	})
}

func TestListDrafts(t *testing.T) {
	var gotQuery string
	var gotCacheControl string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/editor/drafts" {
			t.Errorf("Expected path /v1/editor/drafts, got %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		gotCacheControl = r.Header.Get("Cache-Control")

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":1,"slug":"a","title":"A","reliability_score":0.5,"created_at":"2025-01-01T00:00:00","status":"in_review"},
			{"id":2,"slug":"b","title":"B","reliability_score":null,"created_at":"2025-01-02T00:00:00","status":"approved"}
		]`)
	}))
	defer server.Close()

	drafts, err := testClient(server.URL).ListDrafts(context.Background())
	if err != nil {
		t.Fatalf("ListDrafts returned error: %v", err)
	}

	if gotQuery != "min_score=0&status=in_review" {
		t.Errorf("Unexpected query string: %s", gotQuery)
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("Expected Cache-Control no-cache, got %q", gotCacheControl)
	}

	if len(drafts) != 2 {
		t.Fatalf("Expected 2 drafts, got %d", len(drafts))
	}

	if drafts[0].ID != 1 || drafts[0].Title != "A" || drafts[0].Status != "in_review" {
		t.Errorf("Unexpected first draft: %+v", drafts[0])
	}
	if drafts[0].ReliabilityScore == nil || *drafts[0].ReliabilityScore != 0.5 {
		t.Errorf("Expected score 0.5, got %v", drafts[0].ReliabilityScore)
	}
	if drafts[1].ReliabilityScore != nil {
		t.Errorf("Expected nil score for unscored draft, got %v", *drafts[1].ReliabilityScore)
	}
}

func TestListDraftsGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).ListDrafts(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-200 response, got nil")
	}
}

func TestFindDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":1,"slug":"a","title":"A","reliability_score":0.5,"created_at":"2025-01-01T00:00:00","status":"in_review"},
			{"id":2,"slug":"b","title":"B","reliability_score":null,"created_at":"2025-01-02T00:00:00","status":"approved"}
		]`)
	}))
	defer server.Close()

	client := testClient(server.URL)

	tests := []struct {
		name      string
		id        int
		wantFound bool
		wantTitle string
	}{
		{
			name:      "Existing draft is found",
			id:        2,
			wantFound: true,
			wantTitle: "B",
		},
		{
			name:      "Missing draft is a quiet miss, not an error",
			id:        999,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, found, err := client.FindDraft(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("FindDraft returned error: %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("Expected found=%v, got %v", tt.wantFound, found)
			}
			if found && draft.Title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, draft.Title)
			}
			if !found && draft != nil {
				t.Errorf("Expected nil draft on miss, got %+v", draft)
			}
		})
	}
}

func TestApprovePost(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"status":"approved","post_id":1}`)
	}))
	defer server.Close()

	err := testClient(server.URL).ApprovePost(context.Background(), 1)
	if err != nil {
		t.Fatalf("ApprovePost returned error: %v", err)
	}

	if gotPath != "/v1/post/approve" {
		t.Errorf("Expected path /v1/post/approve, got %s", gotPath)
	}
	if len(gotBody) != 1 || gotBody["post_id"] != float64(1) {
		t.Errorf("Unexpected approve body: %v", gotBody)
	}
}

func TestPublishPost(t *testing.T) {
	var gotPath string
	var gotBody struct {
		PostID   int      `json:"post_id"`
		Channels []string `json:"channels"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"status":"published"}`)
	}))
	defer server.Close()

	err := testClient(server.URL).PublishPost(context.Background(), 2)
	if err != nil {
		t.Fatalf("PublishPost returned error: %v", err)
	}

	if gotPath != "/v1/post/publish" {
		t.Errorf("Expected path /v1/post/publish, got %s", gotPath)
	}
	if gotBody.PostID != 2 {
		t.Errorf("Expected post_id 2, got %d", gotBody.PostID)
	}
	if len(gotBody.Channels) != 2 || gotBody.Channels[0] != "cms" || gotBody.Channels[1] != "telegram" {
		t.Errorf("Expected channels [cms telegram], got %v", gotBody.Channels)
	}
}

func TestActionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL)

	if err := client.ApprovePost(context.Background(), 1); err == nil {
		t.Error("Expected error for failed approve, got nil")
	}
	if err := client.PublishPost(context.Background(), 1); err == nil {
		t.Error("Expected error for failed publish, got nil")
	}
}
