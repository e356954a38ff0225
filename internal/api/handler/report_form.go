package handler

import (
	"bytes"
	"embed"
	"net/http"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/pkg/errors"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
	"github.com/vfg2006/ai-report-generator/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormPage renderiza a tela única do formulário
type FormPage struct {
	tpl      *pongo2.Template
	provider string
}

// NewFormPage carrega o template da página. provider aparece no indicador de carregamento.
func NewFormPage(provider string) (*FormPage, error) {
	set := pongo2.NewSet("pages", pongo2.NewFSLoader(templatesFS))
	tpl, err := set.FromFile("templates/form.html")
	if err != nil {
		return nil, errors.Wrap(err, "handler: load form template")
	}
	return &FormPage{tpl: tpl, provider: provider}, nil
}

// Render escreve a página para a visão informada
func (p *FormPage) Render(w http.ResponseWriter, view reporting.FormView) error {
	ctx := pongo2.Context{
		"provider": p.provider,
		"state":    string(view.State),
		"message":  view.Message,
		"blocking": view.Blocking,
	}

	if view.State != reporting.StateIdle {
		ctx["client_name"] = view.Input.ClientName
		ctx["clicks"] = strconv.FormatInt(view.Input.Clicks, 10)
		ctx["cost"] = reporting.FormatCost(view.Input.Cost)
		ctx["conversions"] = strconv.FormatInt(view.Input.Conversions, 10)
	}
	if view.Report != nil {
		ctx["report_text"] = view.Report.Text
	}

	var buf bytes.Buffer
	if err := p.tpl.ExecuteWriter(ctx, &buf); err != nil {
		return errors.Wrap(err, "handler: execute form template")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(viewStatus(view))
	_, err := w.Write(buf.Bytes())
	return err
}

func viewStatus(view reporting.FormView) int {
	switch view.State {
	case reporting.StateInvalid:
		return http.StatusUnprocessableEntity
	case reporting.StateFailed:
		if view.Blocking {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	}
	return http.StatusOK
}

// ShowReportForm exibe o formulário vazio (Idle), ou o erro bloqueante de configuração
func ShowReportForm(controller *reporting.FormController, page *FormPage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := page.Render(w, controller.Idle()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("form: failed to render page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SubmitReportForm recebe a submissão, espera a geração e re-renderiza a página
func SubmitReportForm(controller *reporting.FormController, page *FormPage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseForm(); err != nil {
			logger.WithError(err).Warn("form: invalid form body")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		view := submit(r.Context(), controller, r.PostForm)

		logger.WithFields(log.Fields{
			"state":       string(view.State),
			"client_name": view.Input.ClientName,
		}).Info("form: submission handled")

		if err := page.Render(w, view); err != nil {
			logger.WithError(err).Error("form: failed to render page")
		}
	})
}
