package pipedriveclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
)

func (c *PipedriveClient) ListPipelines() ([]pipedrivedomain.Pipeline, error) {
	var response struct {
		Success bool                       `json:"success"`
		Data    []pipedrivedomain.Pipeline `json:"data"`
	}

	if err := c.getJSON(c.endpoint("/pipelines", nil), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *PipedriveClient) ListStages(pipelineID int) ([]pipedrivedomain.Stage, error) {
	query := url.Values{}
	query.Set("pipeline_id", strconv.Itoa(pipelineID))

	var response struct {
		Success bool                    `json:"success"`
		Data    []pipedrivedomain.Stage `json:"data"`
	}

	if err := c.getJSON(c.endpoint("/stages", query), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *PipedriveClient) getJSON(endpoint string, out interface{}) error {
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pipedrive: request failed with status %s: %s", resp.Status, respBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pipedrive: failed decoding response: %w", err)
	}

	return nil
}
