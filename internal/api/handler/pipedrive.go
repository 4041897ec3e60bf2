package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/pkg/apiErrors"
	"github.com/bitekps/estimate-api/pkg/log"
)

// PipedriveConfig expõe a configuração ativa do Pipedrive para diagnóstico,
// com o token mascarado
func PipedriveConfig(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, formResponse{
			"status":      "success",
			"domain":      cfg.Pipedrive.Domain,
			"pipeline_id": cfg.Pipedrive.PipelineID,
			"stage_id":    cfg.Pipedrive.StageID,
			"api_token":   maskToken(cfg.Pipedrive.APIToken),
		})
	})
}

// PipedrivePipelines lista os funis disponíveis na conta
func PipedrivePipelines(service pipedrive.PipedriveIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		pipelines, err := service.ListPipelines()
		if err != nil {
			logger.WithError(err).Error("pipedrive: failed to list pipelines")
			writeFormError(w, apiErrors.ErrExternalCallFailed, "Pipedrive 파이프라인 조회에 실패했습니다")
			return
		}

		writeJSON(w, http.StatusOK, formResponse{
			"status":    "success",
			"pipelines": pipelines,
		})
	})
}

// PipedriveStages lista as etapas de um funil
func PipedriveStages(service pipedrive.PipedriveIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		raw := httprouter.ParamsFromContext(r.Context()).ByName("pipeline_id")
		pipelineID, err := strconv.Atoi(raw)
		if err != nil {
			logger.WithField("pipeline_id", raw).Warn("pipedrive: invalid pipeline_id parameter")
			writeFormError(w, apiErrors.ErrInvalidRequest, "pipeline_id는 숫자여야 합니다")
			return
		}

		stages, err := service.ListStages(pipelineID)
		if err != nil {
			logger.WithError(err).WithField("pipeline_id", pipelineID).
				Error("pipedrive: failed to list stages")
			writeFormError(w, apiErrors.ErrExternalCallFailed, "Pipedrive 스테이지 조회에 실패했습니다")
			return
		}

		writeJSON(w, http.StatusOK, formResponse{
			"status": "success",
			"stages": stages,
		})
	})
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
