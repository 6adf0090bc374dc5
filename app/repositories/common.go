package repositories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json; charset=UTF-8"

var (
	ErrNotFound = errors.New("record not found")
)

// APIError reports a non-success status returned by the remote API.
type APIError struct {
	Status int
	Method string
	URL    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Status)
}

// apiClient wraps the pieces shared by the HTTP-backed repositories.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(baseURL string, client *http.Client) apiClient {
	if client == nil {
		client = http.DefaultClient
	}
	return apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// getJSON issues a GET against the API and decodes the response body
// into out.
func (c apiClient) getJSON(path string, out interface{}) error {
	url := c.baseURL + path
	resp, err := c.client.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.MethodGet, url); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

// sendJSON issues a request carrying a JSON payload. When out is
// non-nil the response body is decoded into it.
func (c apiClient) sendJSON(method, path string, in, out interface{}) error {
	url := c.baseURL + path

	var body *bytes.Buffer
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, method, url); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %v", err)
		}
	}
	return nil
}

func checkStatus(resp *http.Response, method, url string) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Method: method, URL: url}
	}
	return nil
}
