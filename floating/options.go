package floating

import (
	"fmt"
	"strings"
)

// Options shape the unit interval a draw lands in. The default is [0, 1).
type Options uint8

const (
	None       Options = 0
	ExcludeMin Options = 1 << 0
	IncludeMax Options = 1 << 1
)

var optionNames = []struct {
	flag Options
	name string
}{
	{ExcludeMin, "ExcludeMin"},
	{IncludeMax, "IncludeMax"},
}

func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

func (o Options) String() string {
	if o == None {
		return "None"
	}
	var names []string
	rest := o
	for _, entry := range optionNames {
		if o.Has(entry.flag) {
			names = append(names, entry.name)
			rest &^= entry.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("Options(0x%x)", uint8(rest)))
	}
	return strings.Join(names, "|")
}
