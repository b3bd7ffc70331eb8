package dialect

import (
	"fmt"
	"path/filepath"
	"strings"
)

var namedMasks = map[string]Mask{
	"c":    C,
	"cpp":  CPP,
	"c++":  CPP,
	"d":    D,
	"cs":   CS,
	"c#":   CS,
	"java": Java,
	"oc":   OC,
	"objc": OC,
	"oc+":  OC | CPP,
	"vala": Vala,
	"pawn": Pawn,
	"ecma": ECMA,
	"js":   ECMA,
	"all":  All,
	"allc": AllC,
}

// extensions maps a lower-cased file extension to the dialect it selects.
// Upper-case ".C" and ".H" are handled before lowering.
var extensions = map[string]Mask{
	".c":    C,
	".sqc":  C,
	".cpp":  CPP,
	".cc":   CPP,
	".cxx":  CPP,
	".cp":   CPP,
	".c++":  CPP,
	".h":    CPP,
	".hh":   CPP,
	".hpp":  CPP,
	".hxx":  CPP,
	".ipp":  CPP,
	".d":    D,
	".di":   D,
	".cs":   CS,
	".java": Java,
	".m":    OC,
	".mm":   OC | CPP,
	".vala": Vala,
	".pawn": Pawn,
	".p":    Pawn,
	".sma":  Pawn,
	".inc":  Pawn,
	".es":   ECMA,
	".js":   ECMA,
}

// Parse resolves a dialect list such as "c,cpp", "C|CPP" or "oc+".
func Parse(s string) (Mask, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty dialect list")
	}
	return ParseNames(fields)
}

// ParseNames resolves each name and unions the result.
func ParseNames(names []string) (Mask, error) {
	var m Mask
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		bit, ok := namedMasks[key]
		if !ok {
			return 0, fmt.Errorf("unknown dialect %q (expected one of c|cpp|d|cs|java|oc|oc+|vala|pawn|ecma|all)", name)
		}
		m |= bit
	}
	if m.Empty() {
		return 0, fmt.Errorf("empty dialect list")
	}
	return m, nil
}

// FromPath picks the dialect for a file by its extension.
func FromPath(path string) (Mask, bool) {
	ext := filepath.Ext(path)
	switch ext {
	case "":
		return 0, false
	case ".C", ".H":
		return CPP, true
	}
	m, ok := extensions[strings.ToLower(ext)]
	return m, ok
}

// Extensions returns the recognised file extensions.
func Extensions() []string {
	out := make([]string, 0, len(extensions))
	for ext := range extensions {
		out = append(out, ext)
	}
	return out
}
