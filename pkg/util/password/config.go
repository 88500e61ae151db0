package password

import "github.com/danahmadi/bookora_backend/config"

// FromCentralConfig converts central config.PasswordConfig to Params,
// falling back to defaults for unset values.
func FromCentralConfig(c config.PasswordConfig) *Params {
	p := DefaultParams()

	if c.MemoryKiB > 0 {
		p.Memory = c.MemoryKiB
	}
	if c.Iterations > 0 {
		p.Iterations = c.Iterations
	}
	if c.Parallelism > 0 {
		p.Parallelism = c.Parallelism
	}
	if c.SaltLength > 0 {
		p.SaltLength = c.SaltLength
	}
	if c.KeyLength > 0 {
		p.KeyLength = c.KeyLength
	}

	return p
}
