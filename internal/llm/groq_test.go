package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGroqClient(serverURL string) *groqClient {
	return &groqClient{
		apiKey:     "test-key",
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGroqGenerateContent(t *testing.T) {
	t.Run("PlainTextPromptGetsPlainTextRequest", func(t *testing.T) {
		var body map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatalf("Failed to read request body: %v", err)
			}
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("Failed to decode request body: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"choices": [{"message": {"content": "$3.48 at H-E-B - Whole Milk"}}],
				"usage": {"prompt_tokens": 50, "completion_tokens": 12, "total_tokens": 62}
			}`))
		}))
		defer server.Close()

		client := newTestGroqClient(server.URL)
		resp, err := client.GenerateContent(context.Background(), "Find the current price for milk. Respond with a single line.")
		if err != nil {
			t.Fatalf("GenerateContent failed: %v", err)
		}

		// Forcing json_object mode makes Groq reject prompts that never
		// mention JSON, which would break the free-form price answer.
		if _, ok := body["response_format"]; ok {
			t.Error("Expected no response_format constraint on the request")
		}
		if resp.Content != "$3.48 at H-E-B - Whole Milk" {
			t.Errorf("Unexpected content: %q", resp.Content)
		}
		if resp.Usage.TotalTokens != 62 {
			t.Errorf("Expected 62 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("APIErrorSurfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "bad request"}}`, http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestGroqClient(server.URL)
		if _, err := client.GenerateContent(context.Background(), "anything"); err == nil {
			t.Error("Expected error for non-200 response")
		}
	})

	t.Run("EmptyChoicesIsAnError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": [], "usage": {}}`))
		}))
		defer server.Close()

		client := newTestGroqClient(server.URL)
		if _, err := client.GenerateContent(context.Background(), "anything"); err == nil {
			t.Error("Expected error when no content is generated")
		}
	})
}
