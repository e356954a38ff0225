package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-report-generator/infrastructure/integrator/completion"
	"github.com/vfg2006/ai-report-generator/internal/cli"
	"github.com/vfg2006/ai-report-generator/internal/config"
	"github.com/vfg2006/ai-report-generator/internal/usecases/reporting"
)

func main() {
	// No terminal só avisos e erros vão para o log
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	generator, initErr := reporting.Build(ctx, cfg)
	controller := reporting.NewFormController(generator, initErr)

	if err := cli.Run(ctx, cli.SurveyPrompter{}, controller, completion.DisplayName(cfg), os.Stdout); err != nil {
		os.Exit(1)
	}
}
