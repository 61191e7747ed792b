// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateDocument checks the fields of a catalog document that the matcher
// cannot do without.
func validateDocument(doc *document) error {
	err := getValidator().Struct(doc)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var messages []string
	for _, vErr := range validationErrors {
		switch vErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field %q is required", vErr.Field()))
		case "printascii":
			messages = append(messages, fmt.Sprintf("field %q must be printable text, but got %q", vErr.Field(), vErr.Value()))
		default:
			messages = append(messages, fmt.Sprintf("field %q failed validation on tag %q", vErr.Field(), vErr.Tag()))
		}
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}
