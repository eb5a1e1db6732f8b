package svcerrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("CFG_1000", "config validation failed", nil),
			wantErr: NewInvalidArgumentError("CFG_1000", "config validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANL_9000", "read failed", ExitCodeInputFailed, nil)),
			wantErr: NewInternalError("ANL_9000", "read failed", ExitCodeInputFailed, nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
				assert.Equal(t, tt.wantErr.ExitCode, gotErr.ExitCode, "ExitCode mismatch")
			}
		})
	}
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	svcErr := NewInternalError("ANL_9000", "failed to read access log", ExitCodeInputFailed, fs.ErrNotExist)

	assert.Equal(t, "ANL_9000: failed to read access log: file does not exist", svcErr.Error())
	assert.ErrorIs(t, svcErr, fs.ErrNotExist)
	assert.True(t, svcErr.IsInternalError())

	invalid := NewInvalidArgumentError("CFG_1000", "config validation failed", nil)
	assert.Equal(t, "CFG_1000: config validation failed", invalid.Error())
	assert.False(t, invalid.IsInternalError())
	assert.Equal(t, ExitCodeInvalidConfig, invalid.ExitCode)
}

func TestNewInternalErrorPanic(t *testing.T) {
	t.Parallel()

	svcErr := NewInternalErrorPanic(errors.New("boom"))
	assert.Equal(t, "SYS_9000", svcErr.Code)
	assert.Equal(t, ExitCodeInternal, svcErr.ExitCode)
}
