// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

func newHTTPClient() *resty.Client {
	return resty.New().
		SetBaseURL(httpEndpoint).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json")
}

// postJSON sends body to path and pretty prints whatever JSON comes back,
// success or not, so the API messages reach the operator unchanged
func postJSON(out io.Writer, path string, body any) error {
	resp, err := newHTTPClient().R().SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}

	return printResponse(out, resp)
}

func getJSON(out io.Writer, path string) error {
	resp, err := newHTTPClient().R().Get(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}

	return printResponse(out, resp)
}

func printResponse(out io.Writer, resp *resty.Response) error {
	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode(), resp.String())
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("server returned status %d", resp.StatusCode())
	}

	return nil
}
