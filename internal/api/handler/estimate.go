package handler

import (
	"net/http"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/usecases/estimating"
	"github.com/bitekps/estimate-api/pkg/apiErrors"
	"github.com/bitekps/estimate-api/pkg/log"
)

// FillEstimate preenche o template de orçamento com os dados do formulário
func FillEstimate(service estimating.EstimatingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &domain.EstimateRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			logger.WithError(err).Warn("estimate: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 본문을 해석할 수 없습니다", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_id":         req.FileID,
			"supplier_person": req.SupplierPerson,
			"products":        len(req.Products),
		}).Info("estimate: filling template")

		result, err := service.FillTemplate(r.Context(), req)
		if err != nil {
			logger.WithError(err).Error("estimate: template fill failed")
			writeFormError(w, apiErrors.ErrExternalCallFailed, "견적서 작성에 실패했습니다: "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, formResponse{
			"status":          "success",
			"fileId":          result.FileID,
			"sheet_url":       result.SheetURL,
			"estimate_number": result.EstimateNumber,
			"cells_written":   result.CellsWritten,
		})
	})
}

// CreateEstimateTemplate copia o template para um documento novo, vazio
func CreateEstimateTemplate(service estimating.EstimatingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, err := service.CreateTemplate(r.Context())
		if err != nil {
			logger.WithError(err).Error("estimate: template copy failed")
			writeFormError(w, apiErrors.ErrExternalCallFailed, "견적서 템플릿 생성에 실패했습니다: "+err.Error())
			return
		}

		logger.WithField("file_id", result.FileID).Info("estimate: template created")

		writeJSON(w, http.StatusOK, formResponse{
			"status":    "success",
			"fileId":    result.FileID,
			"sheet_url": result.SheetURL,
		})
	})
}
