package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/containifyci/pixbench/pkg/pixbuf"
)

var (
	ErrNoSizes      = errors.New("no buffer sizes configured")
	ErrNoKinds      = errors.New("no buffer kinds configured")
	ErrInvalidSize  = errors.New("buffer size must be positive")
	ErrSizeTooLarge = errors.New("buffer size overflows width*height")
	ErrUnknownKind  = errors.New("unknown buffer kind")
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Err   error
	Value interface{}
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (%v)", e.Field, e.Err, e.Value)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors collects every problem found in a configuration.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

// Validate checks that the suite can run.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs ValidationErrors

	if len(c.Sizes) == 0 {
		errs = append(errs, ValidationError{Field: "sizes", Err: ErrNoSizes, Value: c.Sizes})
	}
	for i, size := range c.Sizes {
		switch {
		case size <= 0:
			errs = append(errs, ValidationError{Field: fmt.Sprintf("sizes[%d]", i), Err: ErrInvalidSize, Value: size})
		case size > math.MaxInt/size:
			errs = append(errs, ValidationError{Field: fmt.Sprintf("sizes[%d]", i), Err: ErrSizeTooLarge, Value: size})
		}
	}

	if len(c.Kinds) == 0 {
		errs = append(errs, ValidationError{Field: "kinds", Err: ErrNoKinds, Value: c.Kinds})
	}
	for i, kind := range c.Kinds {
		if _, ok := pixbuf.LookupKind(kind); !ok {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("kinds[%d]", i), Err: ErrUnknownKind, Value: kind})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
