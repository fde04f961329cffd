package service

import (
	goerrors "errors"
	"net/http"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

// mapBackendError converts a backend client error into our AppError taxonomy.
// 4xx messages come through verbatim; 5xx and transport failures get a stable
// message so upstream internals never leak to the user.
func mapBackendError(err error) *errors.AppError {

	var apiErr *backend.APIError

	if goerrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			return errors.UnauthorizedError(apiErr.Message).WithError(err)
		case apiErr.StatusCode == http.StatusForbidden:
			return errors.ForbiddenError(apiErr.Message).WithError(err)
		case apiErr.StatusCode == http.StatusNotFound:
			return errors.NotFoundError(apiErr.Message).WithError(err)
		case apiErr.StatusCode < http.StatusInternalServerError:
			return errors.ValidationError(apiErr.Message).WithError(err)
		default:
			return errors.UpstreamError("The server could not process the request").WithError(err)
		}
	}

	return errors.UnavailableError("The server is unreachable").WithError(err)
}
