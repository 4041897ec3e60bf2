package pipedrive

import (
	"github.com/sirupsen/logrus"

	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/bitekps/estimate-api/internal/config"
)

// PipedriveIntegrator expõe as operações de CRM consumidas pelos use cases.
type PipedriveIntegrator interface {
	CreateDeal(payload pipedrivedomain.DealPayload) (int, error)
	CreateOrganization(name string) (int, error)
	CreatePerson(name, email string) (int, error)
	AttachFile(dealID int, localPath, fileName string) (int, error)
	AddNote(dealID int, content string) error
	ListPipelines() ([]pipedrivedomain.Pipeline, error)
	ListStages(pipelineID int) ([]pipedrivedomain.Stage, error)
}

type PipedriveService struct {
	cfg    *config.Config
	Client pipedriveclient.Client
}

func New(cfg *config.Config, client pipedriveclient.Client) PipedriveIntegrator {
	return &PipedriveService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PipedriveService) CreateDeal(payload pipedrivedomain.DealPayload) (int, error) {
	dealID, err := s.Client.CreateDeal(payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"title": payload.Title,
			"error": err.Error(),
		}).Error("pipedrive: failed to create deal")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"deal_id": dealID,
		"title":   payload.Title,
		"value":   payload.Value,
	}).Info("pipedrive: deal created")

	return dealID, nil
}

func (s *PipedriveService) CreateOrganization(name string) (int, error) {
	orgID, err := s.Client.CreateOrganization(pipedrivedomain.OrganizationPayload{
		Name:      name,
		VisibleTo: pipedrivedomain.VisibleToCompany,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  name,
			"error": err.Error(),
		}).Error("pipedrive: failed to create organization")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"org_id": orgID,
		"name":   name,
	}).Info("pipedrive: organization created")

	return orgID, nil
}

func (s *PipedriveService) CreatePerson(name, email string) (int, error) {
	payload := pipedrivedomain.PersonPayload{
		Name:      name,
		VisibleTo: pipedrivedomain.VisibleToCompany,
	}
	if email != "" {
		payload.Email = []pipedrivedomain.PersonEmail{
			{Value: email, Primary: true, Label: "work"},
		}
	}

	personID, err := s.Client.CreatePerson(payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  name,
			"error": err.Error(),
		}).Error("pipedrive: failed to create person")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"person_id": personID,
		"name":      name,
	}).Info("pipedrive: person created")

	return personID, nil
}

func (s *PipedriveService) AttachFile(dealID int, localPath, fileName string) (int, error) {
	fileID, err := s.Client.AttachFile(dealID, localPath, fileName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": dealID,
			"file":    fileName,
			"error":   err.Error(),
		}).Error("pipedrive: failed to attach file to deal")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"deal_id": dealID,
		"file_id": fileID,
	}).Info("pipedrive: file attached to deal")

	return fileID, nil
}

func (s *PipedriveService) AddNote(dealID int, content string) error {
	err := s.Client.CreateNote(pipedrivedomain.NotePayload{
		Content: content,
		DealID:  dealID,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"deal_id": dealID,
			"error":   err.Error(),
		}).Error("pipedrive: failed to add note to deal")
		return err
	}

	logrus.WithField("deal_id", dealID).Info("pipedrive: note added to deal")
	return nil
}

func (s *PipedriveService) ListPipelines() ([]pipedrivedomain.Pipeline, error) {
	return s.Client.ListPipelines()
}

func (s *PipedriveService) ListStages(pipelineID int) ([]pipedrivedomain.Stage, error) {
	return s.Client.ListStages(pipelineID)
}
