package pipedriveclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
	"github.com/bitekps/estimate-api/internal/config"
)

type Client interface {
	CreateDeal(payload pipedrivedomain.DealPayload) (int, error)
	CreateOrganization(payload pipedrivedomain.OrganizationPayload) (int, error)
	CreatePerson(payload pipedrivedomain.PersonPayload) (int, error)
	AttachFile(dealID int, localPath, fileName string) (int, error)
	CreateNote(payload pipedrivedomain.NotePayload) error
	ListPipelines() ([]pipedrivedomain.Pipeline, error)
	ListStages(pipelineID int) ([]pipedrivedomain.Stage, error)
}

type PipedriveClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PipedriveClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// endpoint monta a URL v1 com o api_token na query string (autenticação por
// query parameter, formato aceito pela API do Pipedrive).
func (c *PipedriveClient) endpoint(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_token", c.config.Pipedrive.APIToken)

	return fmt.Sprintf("https://%s/api/v1%s?%s", c.config.Pipedrive.Domain, path, query.Encode())
}

// idResponse é o envelope padrão das respostas de criação.
type idResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID int `json:"id"`
	} `json:"data"`
}

// postJSON envia um POST e decodifica o envelope de criação, exigindo 201.
func (c *PipedriveClient) postJSON(endpoint string, body interface{}) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("pipedrive: request failed with status %s: %s", resp.Status, respBody)
	}

	var response idResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("pipedrive: failed decoding response: %w", err)
	}

	return response.Data.ID, nil
}
