package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant-menu-api/models"
)

// Client talks to the catalog service. Mutating calls carry the operator's
// admin key per request; the key is never stored on the Client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMenu lists items matching the given filters. Empty search means no
// text filter; an empty or "All" category means no category filter.
func (c *Client) FetchMenu(search, category string) ([]models.MenuItem, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if category != "" && category != CategoryAll {
		params.Set("category", category)
	}
	endpoint := c.BaseURL + "/api/menu"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	resp, err := c.HTTPClient.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu: %s", readError(resp))
	}

	var items []models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchQRCode returns the menu QR code as an inline data URL.
func (c *Client) FetchQRCode() (string, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/api/qrcode")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch qrcode: %s", readError(resp))
	}

	var body struct {
		QRCode string `json:"qrCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.QRCode, nil
}

// CreateItem adds a menu item using the supplied admin key.
func (c *Client) CreateItem(adminKey string, item models.MenuItem) (*models.MenuItem, error) {
	return c.mutate(http.MethodPost, "/api/menu", adminKey, item)
}

// UpdateItem overwrites the supplied fields of an existing item.
func (c *Client) UpdateItem(adminKey, id string, fields map[string]interface{}) (*models.MenuItem, error) {
	return c.mutate(http.MethodPut, "/api/menu/"+id, adminKey, fields)
}

// DeleteItem hard-deletes an item.
func (c *Client) DeleteItem(adminKey, id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+"/api/menu/"+id, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Admin-Key", adminKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete item: %s", readError(resp))
	}
	return nil
}

func (c *Client) mutate(method, path, adminKey string, payload interface{}) (*models.MenuItem, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", adminKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: %s", method, path, readError(resp))
	}

	var item models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// readError extracts the server's {"error": ...} message, falling back to
// the HTTP status line.
func readError(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}
