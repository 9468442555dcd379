// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 64 * 1024

// maxResponseSize bounds a successful response body.
const maxResponseSize = 16 << 20

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// apiRequest describes one outgoing call.
type apiRequest struct {
	method  string
	url     string
	body    []byte
	headers map[string]string
}

// execute waits for the limiter, performs req and returns the full body of a
// 2xx response. Non-2xx responses come back as a *FetchError of kind
// ErrKindStatus with errBody set to the (truncated) response body.
func execute(ctx context.Context, client *http.Client, limiter *rate.Limiter, source string, req apiRequest) (body, errBody []byte, err error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, nil, AsFetchError(source, err)
	}

	var reader io.Reader = http.NoBody
	if req.body != nil {
		reader = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, reader)
	if err != nil {
		return nil, nil, &FetchError{Source: source, Kind: ErrKindConfig, Message: "Invalid item source URL", Cause: err}
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, nil, AsFetchError(source, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody = readBodyForError(resp.Body)
		return nil, errBody, &FetchError{
			Source:     source,
			Kind:       ErrKindStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Item source returned HTTP %d", resp.StatusCode),
		}
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, AsFetchError(source, fmt.Errorf("read response: %w", err))
	}
	return body, nil, nil
}
