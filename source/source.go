// Package source defines the raw bit-source contract consumed by every
// sampler in this module, along with concrete generators and wrappers.
package source

// Source supplies uniformly distributed raw words. Each call advances the
// underlying state. Implementations are not safe for concurrent use unless
// documented otherwise; see Locked.
type Source interface {
	Uint32() uint32
	Uint64() uint64
}
