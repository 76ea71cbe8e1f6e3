package main

import (
	"errors"
	"fmt"
)

var (
	errUsage         = errors.New("invalid usage")
	errMissingOption = errors.New("missing required option")
)

// missingOptionError reports an absent required flag.
type missingOptionError struct {
	option string
}

func (e *missingOptionError) Error() string {
	return fmt.Sprintf("%v --%s", errMissingOption, e.option)
}

func (e *missingOptionError) Is(target error) bool {
	return target == errMissingOption
}

func isUsageError(err error) bool {
	return errors.Is(err, errUsage)
}
