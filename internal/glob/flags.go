package glob

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justrnr500/braceglob/internal/platform"
)

// Flag is a set of glob options, independent of any matcher's native bits.
type Flag int

const (
	Mark     Flag = 0x01 // append a separator to directories
	NoSort   Flag = 0x02 // keep matcher order
	NoCheck  Flag = 0x04 // return the pattern itself when nothing matches
	NoEscape Flag = 0x08 // backslash is a literal
	Brace    Flag = 0x10 // expand {a,b} alternatives
	OnlyDir  Flag = 0x20 // directories only
	Err      Flag = 0x40 // fail on unreadable directories
)

// ErrUnknownFlag is returned by ParseFlags for an unrecognized name.
var ErrUnknownFlag = errors.New("unknown glob flag")

var flagTable = []struct {
	flag   Flag
	name   string
	native platform.Flags
}{
	{Mark, "mark", platform.Mark},
	{NoSort, "nosort", platform.NoSort},
	{NoCheck, "nocheck", platform.NoCheck},
	{NoEscape, "noescape", platform.NoEscape},
	{Brace, "brace", platform.Brace},
	{OnlyDir, "onlydir", platform.OnlyDir},
	{Err, "err", platform.Err},
}

// Has reports whether all bits of o are set in f.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

// Names returns the names of the set flags in declaration order.
func (f Flag) Names() []string {
	var names []string
	for _, e := range flagTable {
		if f&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseFlags turns flag names into a Flag. Names are case-insensitive;
// each entry may itself be a comma-separated list.
func ParseFlags(names []string) (Flag, error) {
	var f Flag
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			bit, ok := lookupFlag(name)
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
			}
			f |= bit
		}
	}
	return f, nil
}

func lookupFlag(name string) (Flag, bool) {
	name = strings.TrimPrefix(name, "glob_")
	for _, e := range flagTable {
		if e.name == name {
			return e.flag, true
		}
	}
	return 0, false
}

// native maps f to the matcher's bits. Brace maps to braceBit, which is 0
// for matchers without native brace support.
func (f Flag) native(braceBit platform.Flags) platform.Flags {
	var out platform.Flags
	for _, e := range flagTable {
		if f&e.flag == 0 {
			continue
		}
		if e.flag == Brace {
			out |= braceBit
			continue
		}
		out |= e.native
	}
	return out
}
