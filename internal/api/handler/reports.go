package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ai-report-generator/internal/domain"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
	"github.com/vfg2006/ai-report-generator/pkg/apiErrors"
	"github.com/vfg2006/ai-report-generator/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// submit lê os campos do formulário e conduz a submissão pelo controlador
func submit(ctx context.Context, controller *reporting.FormController, values url.Values) reporting.FormView {
	input, err := domain.ParseMetricsForm(values)
	if err != nil {
		return controller.Reject(input, err)
	}
	return controller.Submit(ctx, input)
}

// CreateReport é a versão JSON do formulário
func CreateReport(controller *reporting.FormController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.MetricsInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithField("error", err.Error()).Warn("reports: invalid request body")
			writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrInvalidRequest))
			return
		}

		view := controller.Submit(r.Context(), input)

		switch view.State {
		case reporting.StateInvalid:
			code := apiErrors.ErrMissingRequiredData
			if errors.Is(view.Err, domain.ErrInvalidNumber) {
				code = apiErrors.ErrInvalidFormat
			}
			apiErrors.WriteError(w, code, view.Message, nil)
			return
		case reporting.StateFailed:
			code := apiErrors.ErrExternalService
			if view.Blocking {
				code = apiErrors.ErrConfiguration
			}
			logger.WithFields(log.Fields{
				"client_name": input.ClientName,
				"error":       view.Message,
			}).Error("reports: failed to generate summary")
			writeAPIError(w, apiErrors.FromError(view.Err, code))
			return
		}

		body, err := json.Marshal(view.Report)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrInternalServer))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	})
}

func writeAPIError(w http.ResponseWriter, apiErr apiErrors.APIError) {
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
