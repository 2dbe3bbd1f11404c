package solver

import "context"

// GatewayOption configures a SATBackend via functional arguments, in the
// same shape as driver.Option.
type GatewayOption func(*SATBackend)

// WithContext bounds every solver invocation made through this backend.
// Without it, each call defaults to context.Background().
func WithContext(ctx context.Context) GatewayOption {
	return func(b *SATBackend) {
		if ctx != nil {
			b.Ctx = ctx
		}
	}
}
