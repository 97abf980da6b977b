package source

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Counting records how many raw words each width has drawn from the wrapped
// source.
type Counting struct {
	src     Source
	draws32 uint64
	draws64 uint64
}

func NewCounting(src Source) *Counting {
	return &Counting{src: src}
}

func (c *Counting) Uint32() uint32 {
	c.draws32 += 1
	return c.src.Uint32()
}

func (c *Counting) Uint64() uint64 {
	c.draws64 += 1
	return c.src.Uint64()
}

func (c *Counting) Draws() (draws32 uint64, draws64 uint64) {
	return c.draws32, c.draws64
}

func (c *Counting) Total() uint64 {
	return c.draws32 + c.draws64
}

func (c *Counting) Reset() {
	c.draws32 = 0
	c.draws64 = 0
}

func (c *Counting) String() string {
	return fmt.Sprintf("%s draws (%s 32-bit, %s 64-bit)",
		humanize.Comma(int64(c.Total())),
		humanize.Comma(int64(c.draws32)),
		humanize.Comma(int64(c.draws64)),
	)
}
