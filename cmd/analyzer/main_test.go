package main

import (
	"errors"
	"fmt"
	"testing"

	"api-usage-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	configErr := svcerrors.NewInvalidArgumentError("CFG_1000", "config validation failed", errors.New("output.path (required)"))
	outputErr := svcerrors.NewInternalError("ANL_9001", "failed to write report", svcerrors.ExitCodeOutputFailed, nil)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "success", err: nil, expected: svcerrors.ExitCodeOK},
		{name: "config error", err: configErr, expected: svcerrors.ExitCodeInvalidConfig},
		{name: "wrapped output error", err: fmt.Errorf("run: %w", outputErr), expected: svcerrors.ExitCodeOutputFailed},
		{name: "plain error", err: errors.New("boom"), expected: svcerrors.ExitCodeInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, exitCodeOf(tt.err))
		})
	}
}
