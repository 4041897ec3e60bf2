package handler

import (
	"net/http"

	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive"
	"github.com/bitekps/estimate-api/internal/api/handler/router"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/usecases/collecting"
	"github.com/bitekps/estimate-api/internal/usecases/estimating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/test",
			Method:  http.MethodGet,
			Handler: TestHandler(),
		},
	}
}

func Estimates(estimatingService estimating.EstimatingService, collectingService collecting.CollectingService) []router.Route {
	return []router.Route{
		{
			Path:    "/estimate",
			Method:  http.MethodPost,
			Handler: FillEstimate(estimatingService),
		},
		{
			Path:    "/collect-data",
			Method:  http.MethodPost,
			Handler: CollectData(collectingService),
		},
		{
			Path:    "/create-estimate-template",
			Method:  http.MethodPost,
			Handler: CreateEstimateTemplate(estimatingService),
		},
	}
}

// PipedriveDiagnostics são os endpoints de inspeção usados ao ajustar o funil
func PipedriveDiagnostics(cfg *config.Config, service pipedrive.PipedriveIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/pipedrive-config",
			Method:  http.MethodGet,
			Handler: PipedriveConfig(cfg),
		},
		{
			Path:    "/pipedrive-pipelines",
			Method:  http.MethodGet,
			Handler: PipedrivePipelines(service),
		},
		{
			Path:    "/pipedrive-stages/:pipeline_id",
			Method:  http.MethodGet,
			Handler: PipedriveStages(service),
		},
	}
}
