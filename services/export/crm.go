package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const hubSpotBaseURL = "https://api.hubapi.com"

// HubSpotClient creates CRM contacts through the HubSpot v3 objects API.
type HubSpotClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHubSpotClient wraps a private app token. Returns nil when the token is
// empty so the pipeline can treat CRM sync as unconfigured.
func NewHubSpotClient(apiKey string) *HubSpotClient {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	return &HubSpotClient{
		apiKey:     apiKey,
		baseURL:    hubSpotBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type hubSpotContactRequest struct {
	Properties map[string]string `json:"properties"`
}

type hubSpotContactResponse struct {
	ID string `json:"id"`
}

// CreateContact creates a contact with the parsed name, email and the
// exported document URL and returns the new contact id.
func (c *HubSpotClient) CreateContact(ctx context.Context, firstName, lastName, email, docURL string) (string, error) {
	wire := hubSpotContactRequest{
		Properties: map[string]string{
			"firstname": firstName,
			"lastname":  lastName,
			"email":     email,
		},
	}
	if docURL != "" {
		wire.Properties["dotaznik_dokument"] = docURL
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(wire); err != nil {
		return "", fmt.Errorf("crm: encode contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/crm/v3/objects/contacts", &buf)
	if err != nil {
		return "", fmt.Errorf("crm: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("crm: create contact: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("crm: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("crm: hubspot returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var contact hubSpotContactResponse
	if err := json.Unmarshal(raw, &contact); err != nil {
		return "", fmt.Errorf("crm: decode response: %w", err)
	}
	return contact.ID, nil
}
