package configs

import (
	"fmt"

	"api-usage-analytics/internal/shared/svcerrors"
)

// Config errors
const (
	codeInvalidConfig = "CFG_1000"
)

// errInvalidConfigUnreadable returns an error when the config file cannot be read or parsed.
func errInvalidConfigUnreadable(configPath string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig,
		fmt.Sprintf("failed to read config file %q", configPath), cause)
}

func errInvalidConfigUndecodable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "failed to unmarshal config", cause)
}

// errInvalidConfigValidation returns an error listing every field that failed validation.
func errInvalidConfigValidation(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "config validation failed", cause)
}
