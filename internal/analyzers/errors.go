package analyzers

import (
	"fmt"

	"api-usage-analytics/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeInternalInputReadFailed      = "ANL_9000"
	codeInternalOutputWriteFailed    = "ANL_9001"
	codeInternalLineProcessingFailed = "ANL_9002"
)

// errInternalInputReadFailed returns an error when the access log cannot be opened or read.
func errInternalInputReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInputReadFailed, "failed to read access log",
		svcerrors.ExitCodeInputFailed, fmt.Errorf("inputReadFailed: %w", cause))
}

// errInternalOutputWriteFailed returns an error when the report cannot be written.
func errInternalOutputWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputWriteFailed, "failed to write report",
		svcerrors.ExitCodeOutputFailed, fmt.Errorf("outputWriteFailed: %w", cause))
}

// errInternalLineProcessingFailed returns an error when a line worker failed and counts are incomplete.
func errInternalLineProcessingFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLineProcessingFailed, "failed to process access log lines",
		svcerrors.ExitCodeInternal, fmt.Errorf("lineProcessingFailed: %w", cause))
}
