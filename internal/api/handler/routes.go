package handler

import (
	"net/http"

	"github.com/vfg2006/ai-report-generator/internal/api/handler/router"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// ReportForm retorna as rotas da tela do formulário
func ReportForm(controller *reporting.FormController, page *FormPage) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: ShowReportForm(controller, page),
		},
		{
			Path:    "/",
			Method:  http.MethodPost,
			Handler: SubmitReportForm(controller, page),
		},
	}
}

func Reports(controller *reporting.FormController) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: CreateReport(controller),
		},
	}
}
