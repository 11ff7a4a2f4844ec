package req

import (
	"context"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"gamedeals/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Validate checks a request struct that the caller has already populated from
// the URL query or path.
func Validate(ctx context.Context, dest any) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
