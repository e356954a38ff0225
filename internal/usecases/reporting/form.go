package reporting

import (
	"context"
	"errors"

	"github.com/vfg2006/ai-report-generator/internal/domain"
	"github.com/vfg2006/ai-report-generator/pkg/log"
)

// FormState representa um estado do formulário de métricas
type FormState string

const (
	StateIdle       FormState = "idle"
	StateSubmitted  FormState = "submitted"
	StateValidating FormState = "validating"
	StateInvalid    FormState = "invalid"
	StateGenerating FormState = "generating"
	StateDisplayed  FormState = "displayed"
	StateFailed     FormState = "failed"
)

// MissingFieldsWarning é o aviso exibido quando a validação falha
const MissingFieldsWarning = "Por favor, preencha todos os campos para gerar o resumo."

var transitions = map[FormState][]FormState{
	StateIdle:       {StateSubmitted, StateFailed},
	StateSubmitted:  {StateValidating, StateFailed},
	StateValidating: {StateInvalid, StateGenerating},
	StateGenerating: {StateDisplayed, StateFailed},
	StateInvalid:    {StateIdle},
	StateDisplayed:  {StateIdle},
	StateFailed:     {StateIdle},
}

// CanTransition informa se a máquina de estados permite ir de from para to
func CanTransition(from, to FormState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// FormView é o resultado de uma interação, pronto para ser exibido
type FormView struct {
	State    FormState
	Input    domain.MetricsInput
	Message  string // aviso ou erro mostrado ao usuário, sem tratamento
	Blocking bool   // erro de configuração: o formulário não deve ser exibido
	Report   *domain.Report
	Err      error
	Trace    []FormState
}

func (v *FormView) enter(state FormState) {
	v.State = state
	v.Trace = append(v.Trace, state)
}

// FormController conduz uma submissão do formulário pelo pipeline.
// Não guarda estado entre submissões: o gerador é construído uma vez no
// início do processo e só é lido aqui.
type FormController struct {
	generator Generator
	initErr   error
}

// NewFormController recebe o gerador já construído ou o erro da sua construção.
// Com initErr preenchido toda interação termina em Failed bloqueante.
func NewFormController(generator Generator, initErr error) *FormController {
	if generator == nil && initErr == nil {
		initErr = domain.NewConfigurationError("generator", errors.New("gerador não configurado"))
	}
	return &FormController{
		generator: generator,
		initErr:   initErr,
	}
}

// Idle devolve a visão inicial do formulário
func (c *FormController) Idle() FormView {
	view := FormView{}
	view.enter(StateIdle)
	if c.initErr != nil {
		c.fail(&view, c.initErr)
	}
	return view
}

// Reject leva uma submissão cujos campos não puderam ser lidos direto para Invalid
func (c *FormController) Reject(input domain.MetricsInput, err error) FormView {
	view := FormView{Input: input}
	view.enter(StateIdle)
	view.enter(StateSubmitted)
	if c.initErr != nil {
		c.fail(&view, c.initErr)
		return view
	}

	view.enter(StateValidating)
	view.enter(StateInvalid)
	view.Err = err
	view.Message = err.Error()
	return view
}

// Submit executa Submitted -> Validating -> {Invalid, Generating} -> {Displayed, Failed}.
// A chamada ao modelo é síncrona e não pode ser cancelada pelo usuário.
func (c *FormController) Submit(ctx context.Context, input domain.MetricsInput) FormView {
	logger := log.ForContext(ctx)

	view := FormView{Input: input}
	view.enter(StateIdle)
	view.enter(StateSubmitted)
	if c.initErr != nil {
		c.fail(&view, c.initErr)
		return view
	}

	view.enter(StateValidating)
	if err := input.CheckRanges(); err != nil {
		view.enter(StateInvalid)
		view.Err = err
		view.Message = err.Error()
		return view
	}
	if err := input.Validate(); err != nil {
		logger.WithField("state", string(StateInvalid)).Debug("form: missing required fields")
		view.enter(StateInvalid)
		view.Err = err
		view.Message = MissingFieldsWarning
		return view
	}

	view.enter(StateGenerating)
	report, err := c.generator.Generate(ctx, input)
	if err != nil {
		c.fail(&view, err)
		return view
	}

	view.enter(StateDisplayed)
	view.Report = report
	return view
}

func (c *FormController) fail(view *FormView, err error) {
	view.enter(StateFailed)
	view.Err = err
	view.Message = err.Error()
	view.Blocking = errors.Is(err, domain.ErrConfiguration)
}
