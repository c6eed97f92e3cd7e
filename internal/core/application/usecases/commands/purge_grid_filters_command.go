package commands

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrPurgeGridFiltersCommandIsNotConstructed = errors.New(
	"PurgeGridFiltersCommand must be created via NewPurgeGridFiltersCommand constructor",
)

// PurgeGridFiltersCommand forgets saved grid filters that nobody touched for olderThan.
type PurgeGridFiltersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeGridFiltersCommand(olderThan time.Duration) (PurgeGridFiltersCommand, error) {
	if olderThan <= 0 {
		return PurgeGridFiltersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan",
			fmt.Errorf("%s is not a positive duration", olderThan),
		)
	}

	return PurgeGridFiltersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeGridFiltersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeGridFiltersCommandIsNotConstructed)
}

func (c PurgeGridFiltersCommand) OlderThan() time.Duration {
	return c.olderThan
}
