package fuzztests

import (
	"strings"
	"testing"

	"kwclass/internal/keywords"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var sourceSeeds = []string{
	"",
	"int main(void) { return 0; }\n",
	"#define MAX(a, b) ((a) > (b) ? (a) : (b))\n#ifdef MAX\n#endif\n",
	"#pragma once\n_Pragma(\"omp parallel\") for (;;) {}\n",
	"template <typename T> class Box : public Base { friend T; };\n",
	"@interface Foo : NSObject\n@property (nonatomic) int x;\n@end\n",
	"namespace N { delegate void F(); }\n#region r\n#endregion\n",
	"version (linux) { scope (exit) writeln(\"bye\"); }\n",
	"stock Float:tagof(x) { state idle; }\n",
	"#define LONG \\\n  continued body\nint after;\n",
	"/* unterminated comment\n",
	"\"unterminated string\nchar c = '\\'';\n",
	"__attribute__((mode(__DI__))) int wide;\r\n",
	"x = 0x1fULL + .5e-3 + 1'000;\n",
	"# if defined(__has_include)\n",
}

var keywordSeeds = []string{
	"",
	"MyType\n",
	"# comment only\n\n   \n",
	"Alpha  # trailing comment\nbeta\n_under\n@objc\n$dollar\n",
	"two words\n",
	"1bad\n",
	"caf\u00e9\n",
	"tab\tsep\n",
}

func addSourceSeeds(f *testing.F) {
	for _, s := range sourceSeeds {
		f.Add([]byte(s))
	}
	// every compiled-in tag, one per line
	var b strings.Builder
	for _, e := range keywords.Static() {
		b.WriteString(e.Tag)
		b.WriteByte('\n')
	}
	f.Add([]byte(b.String()))
}

func addKeywordSeeds(f *testing.F) {
	for _, s := range keywordSeeds {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
