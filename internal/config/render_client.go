package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SecretStorage é a fonte secundária de credenciais (secret files do Render).
type SecretStorage interface {
	GetSecret(serviceID, secretName string) (string, error)
}

type RenderClient struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey: config.Render.APIKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetSecret busca o conteúdo de um secret file do serviço no Render.
func (c *RenderClient) GetSecret(serviceID, secretName string) (string, error) {
	url := fmt.Sprintf("https://api.render.com/v1/services/%s/secret-files?limit=100", serviceID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("config: error listing secret files: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	for _, sf := range response {
		if sf.SecretFile.Name == secretName {
			return sf.SecretFile.Content, nil
		}
	}

	return "", fmt.Errorf("config: secret file %q not found on service %s", secretName, serviceID)
}
