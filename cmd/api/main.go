package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/completion"
	"github.com/vfg2006/ai-report-generator/internal/api"
	"github.com/vfg2006/ai-report-generator/internal/api/handler"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O gerador é construído uma única vez. Se falhar, o servidor sobe mesmo
	// assim e a tela mostra o erro de configuração no lugar do formulário.
	generator, initErr := reporting.Build(ctx, cfg)
	if initErr != nil {
		logrus.WithError(initErr).Error("Erro ao inicializar o modelo de IA")
	}
	controller := reporting.NewFormController(generator, initErr)

	page, err := handler.NewFormPage(completion.DisplayName(cfg))
	if err != nil {
		logrus.Fatal(err)
	}

	server, err := api.New(cfg, controller, page)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
