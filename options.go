package impsep

import "context"

// Option configures an ImportantSeparators call.
type Option func(*config)

type config struct {
	ctx   context.Context
	debug bool
}

func defaultConfig() config {
	return config{ctx: context.Background()}
}

// WithContext makes ImportantSeparators check ctx for cancellation at every
// recursive call, returning ctx.Err() if it fires mid-enumeration. There is
// no built-in cancellation otherwise; this is the cooperative check the
// core contract expects a host to supply.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithDebugAssertions turns the "boundary selector found nothing but the
// instance is not yet separated" internal-invariant violation into a panic
// instead of the default safe fallback (treat it as the base case and
// return {∅}). Off by default, matching the reference behavior.
func WithDebugAssertions(on bool) Option {
	return func(c *config) {
		c.debug = on
	}
}
