package closers

import (
	"context"
	"errors"
	"io"

	"github.com/payswitch-intl/payswitch-go/logging"
)

// Panic calls Close on the specified closer, panicking on error
func Panic(ctx context.Context, c io.Closer) {
	logger := logging.Logger(ctx, "closers.Panic")
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Error().Err(err).Msg("error attempting to close")
		if errors.Is(err, context.Canceled) || err.Error() == "context canceled" {
			// the request-scoped context timeout on the http client manifests
			// as this when the body stream is not read in time, closing is
			// best effort at that point
			return
		}
		panic(err.Error())
	}
}
