package pipedriveclient

import (
	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
)

func (c *PipedriveClient) CreateDeal(payload pipedrivedomain.DealPayload) (int, error) {
	return c.postJSON(c.endpoint("/deals", nil), payload)
}

func (c *PipedriveClient) CreateOrganization(payload pipedrivedomain.OrganizationPayload) (int, error) {
	return c.postJSON(c.endpoint("/organizations", nil), payload)
}

func (c *PipedriveClient) CreatePerson(payload pipedrivedomain.PersonPayload) (int, error) {
	return c.postJSON(c.endpoint("/persons", nil), payload)
}

func (c *PipedriveClient) CreateNote(payload pipedrivedomain.NotePayload) error {
	_, err := c.postJSON(c.endpoint("/notes", nil), payload)
	return err
}
