package handler

import (
	"net/http"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/usecases/collecting"
	"github.com/bitekps/estimate-api/pkg/apiErrors"
	"github.com/bitekps/estimate-api/pkg/log"
)

// CollectData fecha o ciclo do orçamento: PDF, Drive, Pipedrive e planilha de coleta
func CollectData(service collecting.CollectingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &domain.EstimateRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			logger.WithError(err).Warn("collect: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 본문을 해석할 수 없습니다", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_id":         req.FileID,
			"estimate_number": req.EstimateNumber,
		}).Info("collect: collecting estimate data")

		result, err := service.CollectData(r.Context(), req)
		if err != nil {
			logger.WithError(err).Error("collect: data collection failed")
			writeFormError(w, apiErrors.ErrExternalCallFailed, "견적서 수집에 실패했습니다: "+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, formResponse{
			"status":            "success",
			"pdf_link":          result.PDFLink,
			"pdf_id":            result.PDFID,
			"pdf_count_today":   result.PDFCountToday,
			"pipedrive_deal_id": result.PipedriveDealID,
			"warnings":          result.Warnings,
		})
	})
}
