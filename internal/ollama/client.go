// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ollama talks to a local Ollama-compatible text-generation endpoint
// and decodes its buffered and streamed response forms.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"docprompt/internal/observability"
)

// GenerateRequest is the body of one generate call
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Client issues generate requests against one Ollama-compatible base URL
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	observer   *observability.StandardObserver
}

// NewClient creates a client for the given endpoint. The timeout bounds
// buffered requests only; streamed responses run until the terminal event or
// context cancellation.
func NewClient(baseURL string, timeout time.Duration, observer *observability.StandardObserver) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		observer: observer,
		// No client-level timeout: it would cut off long-running streams.
		httpClient: &http.Client{},
	}
}

// Generate runs one buffered generate call and returns the trimmed response
// text from the single JSON object body
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	finish := c.observer.StartTiming("ollama", "generate", "")

	body, err := c.post(ctx, GenerateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		finish(false, nil)
		return "", err
	}
	defer body.Close()

	var event GenerateEvent
	if err := json.NewDecoder(body).Decode(&event); err != nil {
		finish(false, nil)
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	answer := strings.TrimSpace(event.Response)
	finish(true, map[string]interface{}{"response_length": len(answer)})
	return answer, nil
}

// GenerateStream runs one streamed generate call, emitting token text to
// sink as each event arrives. It returns once the terminal event is decoded
// or the response stream ends.
func (c *Client) GenerateStream(ctx context.Context, model, prompt string, sink io.Writer) error {
	finish := c.observer.StartTiming("ollama", "generate_stream", "")

	body, err := c.post(ctx, GenerateRequest{Model: model, Prompt: prompt, Stream: true})
	if err != nil {
		finish(false, nil)
		return err
	}
	defer body.Close()

	decoder := &EventDecoder{}
	aggregator := NewAggregator(sink)
	eventCount := 0

	buf := make([]byte, 4096)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			for _, event := range decoder.Feed(buf[:n]) {
				eventCount++
				if err := aggregator.Consume(event); err != nil {
					finish(false, nil)
					return err
				}
			}
			if decoder.Done() {
				break
			}
		}
		if readErr == io.EOF {
			for _, event := range decoder.Finish() {
				eventCount++
				if err := aggregator.Consume(event); err != nil {
					finish(false, nil)
					return err
				}
			}
			break
		}
		if readErr != nil {
			finish(false, nil)
			return fmt.Errorf("read response stream: %w", readErr)
		}
	}

	if err := aggregator.Close(); err != nil {
		finish(false, nil)
		return err
	}

	finish(true, map[string]interface{}{"event_count": eventCount})
	return nil
}

func (c *Client) post(ctx context.Context, genReq GenerateRequest) (io.ReadCloser, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	return resp.Body, nil
}
