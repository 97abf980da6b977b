package source

import "sync"

// Locked serializes access to a source shared between goroutines. Samplers
// that draw several words per value still interleave with other callers;
// give each goroutine its own source when that matters.
type Locked struct {
	lock sync.Mutex
	src  Source
}

func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) Uint32() uint32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.src.Uint32()
}

func (l *Locked) Uint64() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.src.Uint64()
}
