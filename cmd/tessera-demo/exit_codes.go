package main

import (
	"github.com/odvcencio/tessera/pkg/errors"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitConfig  = 3
	exitBackend = 4
)

func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput:
		return exitUsage
	case errors.ErrCodeConfigLoad, errors.ErrCodeConfigParse, errors.ErrCodeConfigInvalid:
		return exitConfig
	case errors.ErrCodeBackendIO, errors.ErrCodeBackendUnsupported:
		return exitBackend
	}
	return exitFailure
}
