// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks the merged [StructuredConfig] against its struct tags
// before it is converted into a ServerConfig.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens validator.ValidationErrors into a single
// error naming every failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidServerConfigs, strings.Join(msgs, "; "))
}
