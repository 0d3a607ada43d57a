// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"docprompt/internal/observability"
)

func testObserver() *observability.StandardObserver {
	return observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
}

func TestGenerate_Buffered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("buffered call must send stream=false")
		}
		if req.Model != "llama3" {
			t.Errorf("unexpected model: %s", req.Model)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "  the answer  ",
			"done":     true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, testObserver())
	answer, err := client.Generate(context.Background(), "llama3", "question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "the answer" {
		t.Errorf("expected trimmed answer, got %q", answer)
	}
}

func TestGenerateStream_EmitsTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if !req.Stream {
			t.Error("streaming call must send stream=true")
		}

		flusher := w.(http.Flusher)
		for _, line := range []string{
			`{"response":"Hel","done":false}`,
			`{"response":"lo","done":false}`,
			`{"response":"","done":true}`,
		} {
			w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	}))
	defer server.Close()

	var sink strings.Builder
	client := NewClient(server.URL, 0, testObserver())
	if err := client.GenerateStream(context.Background(), "llama3", "question", &sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sink.String() != "Hello\n" {
		t.Errorf("expected streamed tokens with trailing newline, got %q", sink.String())
	}
}

func TestGenerateStream_MalformedLineRecovered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{broken\n"))
		w.Write([]byte(`{"response":"fine","done":true}` + "\n"))
	}))
	defer server.Close()

	var sink strings.Builder
	client := NewClient(server.URL, 0, testObserver())
	if err := client.GenerateStream(context.Background(), "llama3", "q", &sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.String() != "fine\n" {
		t.Errorf("malformed line must be skipped, got %q", sink.String())
	}
}

func TestGenerateStream_EndWithoutTerminalEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"cut off","done":false}` + "\n"))
	}))
	defer server.Close()

	var sink strings.Builder
	client := NewClient(server.URL, 0, testObserver())
	if err := client.GenerateStream(context.Background(), "llama3", "q", &sink); err != nil {
		t.Fatalf("incomplete stream is not an error: %v", err)
	}
	if !strings.HasSuffix(sink.String(), "\n") {
		t.Errorf("output must end with a newline even when the stream is cut off, got %q", sink.String())
	}
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, testObserver())
	_, err := client.Generate(context.Background(), "nope", "q")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, testObserver())
	if _, err := client.Generate(context.Background(), "llama3", "q"); err == nil {
		t.Fatal("expected error when the endpoint is unreachable")
	}
}
