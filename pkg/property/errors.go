// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
