// api/http_client.go
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Request makes an HTTP request to the API and decodes the JSON response.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	return c.RequestWithQuery(method, endpoint, nil, headers, body, response)
}

// RequestWithQuery makes an HTTP request with URL query parameters and
// decodes the JSON response into response when non-nil.
func (c *HTTPClient) RequestWithQuery(method, endpoint string, query url.Values, headers map[string]string, body interface{}, response interface{}) error {
	resBody, err := c.do(method, endpoint, query, headers, body)
	if err != nil {
		return err
	}
	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}

// GetRaw fetches an endpoint and returns the raw response bytes, for
// non-JSON payloads such as photos.
func (c *HTTPClient) GetRaw(endpoint string, query url.Values) ([]byte, error) {
	return c.do(http.MethodGet, endpoint, query, nil, nil)
}

func (c *HTTPClient) do(method, endpoint string, query url.Values, headers map[string]string, body interface{}) ([]byte, error) {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		requestBody = jsonBody
	}

	fullURL := c.BaseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, fullURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.New("unexpected status code: " + res.Status)
	}

	return resBody, nil
}
