// Package dealing registra os orçamentos enviados como negócios no Pipedrive.
package dealing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive"
	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
)

// DealLinks carrega os artefatos do orçamento anexados ao negócio.
type DealLinks struct {
	SheetURL     string
	PDFURL       string
	PDFLocalPath string
	FileName     string
}

// DealResult descreve o que de fato foi criado. As etapas acessórias
// (organização, pessoa, anexo, nota) são best-effort e viram warnings.
type DealResult struct {
	DealID   int
	Created  bool
	Warnings []string
}

type DealingService interface {
	CreateEstimateDeal(req *domain.EstimateRequest, links DealLinks) (*DealResult, error)
}

type EstimateDealService struct {
	cfg       *config.Config
	pipedrive pipedrive.PipedriveIntegrator
}

func NewEstimateDealService(cfg *config.Config, pd pipedrive.PipedriveIntegrator) DealingService {
	return &EstimateDealService{
		cfg:       cfg,
		pipedrive: pd,
	}
}

// CreateEstimateDeal cria o negócio e, na sequência, tenta enriquecer com
// organização, pessoa, anexo do PDF e nota de links. Falhas nas etapas
// acessórias não derrubam o fluxo.
func (s *EstimateDealService) CreateEstimateDeal(req *domain.EstimateRequest, links DealLinks) (*DealResult, error) {
	result := &DealResult{}

	userID, ok := UserIDFor(req.SupplierPerson)
	if !ok {
		logrus.WithField("supplier_person", req.SupplierPerson).
			Warn("dealing: no pipedrive user matched, skipping deal creation")
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("담당자 '%s'에 해당하는 Pipedrive 사용자를 찾을 수 없어 거래를 생성하지 않았습니다", req.SupplierPerson))
		return result, nil
	}

	totals := domain.ComputeTotals(req.Products)

	payload := pipedrivedomain.DealPayload{
		Title:      fmt.Sprintf("%s - %s", req.ReceiverCompany, req.EstimateNumber),
		Value:      totals.GrandTotal,
		Currency:   "KRW",
		PipelineID: s.cfg.Pipedrive.PipelineID,
		StageID:    StageIDFor(req.SupplierPerson),
		UserID:     userID,
		VisibleTo:  pipedrivedomain.VisibleToCompany,
	}

	if req.ReceiverCompany != "" {
		orgID, err := s.pipedrive.CreateOrganization(req.ReceiverCompany)
		if err != nil {
			logrus.WithError(err).Warn("dealing: organization creation failed")
			result.Warnings = append(result.Warnings, "조직 생성 실패")
		} else {
			payload.OrgID = orgID
		}
	}

	if req.ReceiverPerson != "" {
		personID, err := s.pipedrive.CreatePerson(req.ReceiverPerson, req.ReceiverContact)
		if err != nil {
			logrus.WithError(err).Warn("dealing: person creation failed")
			result.Warnings = append(result.Warnings, "담당자 생성 실패")
		} else {
			payload.PersonID = personID
		}
	}

	dealID, err := s.pipedrive.CreateDeal(payload)
	if err != nil {
		return nil, err
	}
	result.DealID = dealID
	result.Created = true

	if links.PDFLocalPath != "" {
		if _, err := s.pipedrive.AttachFile(dealID, links.PDFLocalPath, links.FileName); err != nil {
			logrus.WithError(err).WithField("deal_id", dealID).Warn("dealing: pdf attach failed")
			result.Warnings = append(result.Warnings, "PDF 첨부 실패")
		}
	}

	note := s.buildNote(links)
	if note != "" {
		if err := s.pipedrive.AddNote(dealID, note); err != nil {
			logrus.WithError(err).WithField("deal_id", dealID).Warn("dealing: note creation failed")
			result.Warnings = append(result.Warnings, "노트 생성 실패")
		}
	}

	return result, nil
}

func (s *EstimateDealService) buildNote(links DealLinks) string {
	if links.FileName == "" && links.SheetURL == "" && links.PDFURL == "" {
		return ""
	}
	return fmt.Sprintf("견적서명: %s\n엑셀견적서: %s\nPDF견적서: %s",
		links.FileName, links.SheetURL, links.PDFURL)
}
