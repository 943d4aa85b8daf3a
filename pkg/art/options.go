package art

import "github.com/flier/dnsart/pkg/art/node"

// Option configures a Tree at construction time.
type Option func(*config)

type config struct {
	have256 *bool
}

// WithSIMD32 forces whether N16 promotes to N32 (true) or branches
// directly to N38/N48 (false), overriding the GOARCH-determined
// default. It exists mainly so tests can exercise both promotion paths
// regardless of which architecture they run on.
func WithSIMD32(enabled bool) Option {
	return func(c *config) { c.have256 = &enabled }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c config) apply() {
	if c.have256 != nil {
		node.SetHave256(*c.have256)
	}
}
