package cli

import (
	"sort"

	"github.com/lumenhq/lumen-cli/internal/api"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// reportAPIError renders a typed API failure for the terminal. Nothing
// here mutates session state; the wrapper already performed any
// invalidation before the error reached us.
func reportAPIError(err error) {
	apiErr, ok := api.AsError(err)
	if !ok {
		logger.Errorf("%v", err)
		return
	}

	switch apiErr.Kind {
	case api.KindValidation:
		logger.Errorf("%s", apiErr.Message)
		fields := make([]string, 0, len(apiErr.FieldErrors))
		for field := range apiErr.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			for _, msg := range apiErr.FieldErrors[field] {
				logger.Errorf("%s: %s", field, msg)
			}
		}
	case api.KindUnauthorized:
		logger.Errorf("Your session has expired. Run `lumen login` to sign in again.")
	case api.KindNetwork:
		logger.Errorf("Could not reach the server: %s", apiErr.Message)
		logger.Errorf("Check your connection and try again.")
	default:
		logger.Errorf("%s", apiErr.Message)
	}
}
