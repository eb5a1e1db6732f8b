package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"api-usage-analytics/internal/app"
	"api-usage-analytics/internal/shared/configs"
	"api-usage-analytics/internal/shared/svcerrors"
)

func main() {
	// Load configuration
	cfg, err := configs.LoadConfig("./configs/configs.yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(exitCodeOf(err))
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(svcerrors.ExitCodeInvalidConfig)
	}

	// Interrupt aborts the run; no report is written for a partial read
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = application.Run(ctx)
	stop()

	os.Exit(exitCodeOf(err))
}

func exitCodeOf(err error) int {
	if err == nil {
		return svcerrors.ExitCodeOK
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return svcerrors.ExitCodeInternal
}
