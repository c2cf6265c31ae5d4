package regexp

import (
	"errors"
	"testing"
)

func TestCompileEngineSelection(t *testing.T) {
	corePat := "a+"
	coreRe, err := Compile(corePat)
	if err != nil {
		t.Fatalf("compile core: %v", err)
	}
	if coreRe.Engine() != EngineCore {
		t.Fatalf("expected core backend for %q, got %v", corePat, coreRe.Engine())
	}

	re2Pat := "(?i:a)"
	re2Re, err := Compile(re2Pat)
	if err != nil {
		t.Fatalf("compile re2: %v", err)
	}
	defer re2Re.Release()
	if re2Re.Engine() != EngineRE2 {
		t.Fatalf("expected re2 backend for %q, got %v", re2Pat, re2Re.Engine())
	}

	pcrePat := "(?<=a)b"
	pcreRe, err := Compile(pcrePat)
	if err != nil {
		t.Fatalf("compile pcre: %v", err)
	}
	if pcreRe.Engine() != EnginePCRE {
		t.Fatalf("expected regexp2 backend for %q, got %v", pcrePat, pcreRe.Engine())
	}
}

func TestCoreMatchAndFind(t *testing.T) {
	re := MustCompile("a+")

	if !re.MatchString("caaab") {
		t.Fatalf("MatchString core: expected true")
	}

	if got := re.FindString("caaab"); got != "aaa" {
		t.Fatalf("FindString core: got %q", got)
	}

	if idx := re.FindStringIndex("caaab"); idx[0] != 1 || idx[1] != 4 {
		t.Fatalf("FindStringIndex core: got %v", idx)
	}

	reAlt := MustCompile("(a|ab)")
	if got := reAlt.FindString("ab"); got != "a" {
		t.Fatalf("FindString core alt (leftmost-first): got %q", got)
	}
	reAlt.Longest()
	if got := reAlt.FindString("ab"); got != "ab" {
		t.Fatalf("FindString core alt (longest): got %q", got)
	}

	reLongest := MustCompile("(a|ab)", WithLongest())
	if got := reLongest.FindString("ab"); got != "ab" {
		t.Fatalf("FindString core WithLongest: got %q", got)
	}
}

func TestPCREBackreference(t *testing.T) {
	re := MustCompile(`(\w+)\s+\1`)

	if re.Engine() != EnginePCRE {
		t.Fatalf("expected PCRE backend for backreference pattern")
	}

	if !re.MatchString("go go") {
		t.Fatalf("MatchString pcre backref: expected true")
	}

	if idx := re.FindStringIndex("go go"); idx[0] != 0 || idx[1] != 5 {
		t.Fatalf("FindStringIndex pcre backref: got %v", idx)
	}

	sm := re.FindStringSubmatch("go go")
	if len(sm) != 2 || sm[0] != "go go" || sm[1] != "go" {
		t.Fatalf("FindStringSubmatch pcre backref: got %v", sm)
	}

	idxs := re.FindStringSubmatchIndex("go go")
	expect := []int{0, 5, 0, 2}
	for i, v := range expect {
		if idxs[i] != v {
			t.Fatalf("FindStringSubmatchIndex pcre backref: got %v want %v", idxs, expect)
		}
	}
}

func TestPCRELookbehindRuneOffsets(t *testing.T) {
	// Emoji is 4 bytes; ensures rune-to-byte conversion is correct.
	re := MustCompile("(?<=🙂)a")

	input := "🙂a🙂a"
	idxs := re.FindStringIndex(input)
	if len(idxs) != 2 || idxs[0] != 4 || idxs[1] != 5 {
		t.Fatalf("FindStringIndex pcre lookbehind first: got %v", idxs)
	}

	all := re.FindAllStringIndex(input, -1)
	expect := [][]int{{4, 5}, {9, 10}}
	if len(all) != len(expect) {
		t.Fatalf("FindAllStringIndex pcre lookbehind len: got %v want %v", all, expect)
	}
	for i := range expect {
		if all[i][0] != expect[i][0] || all[i][1] != expect[i][1] {
			t.Fatalf("FindAllStringIndex pcre lookbehind[%d]: got %v want %v", i, all[i], expect[i])
		}
	}
}

func TestPCREReplaceAndSplit(t *testing.T) {
	re := MustCompile("(?<=a)b")

	if out := re.ReplaceAllString("ab ab", "X"); out != "aX aX" {
		t.Fatalf("ReplaceAllString pcre: got %q", out)
	}

	reComma := MustCompile(",")
	parts := reComma.Split("a,b,c", -1)
	expect := []string{"a", "b", "c"}
	if len(parts) != len(expect) {
		t.Fatalf("Split core len: got %v", parts)
	}
	for i := range expect {
		if parts[i] != expect[i] {
			t.Fatalf("Split core[%d]: got %q want %q", i, parts[i], expect[i])
		}
	}
}

func TestForcedEngines(t *testing.T) {
	cases := []struct {
		engine  Engine
		pattern string
		input   string
	}{
		{EngineCore, `\d{3}`, "a123"},
		{EnginePCRE, `\d{3}`, "a123"},
		{EngineRE2, `\d{3}`, "a123"},
	}

	for _, tc := range cases {
		t.Run(tc.engine.String(), func(t *testing.T) {
			re, err := Compile(tc.pattern, WithEngine(tc.engine))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			t.Cleanup(re.Release)

			if re.Engine() != tc.engine {
				t.Fatalf("Engine: got %v want %v", re.Engine(), tc.engine)
			}
			if re.String() != tc.pattern {
				t.Fatalf("String: got %q want %q", re.String(), tc.pattern)
			}
			if got := re.FindString(tc.input); got != "123" {
				t.Fatalf("FindString: got %q", got)
			}
			if idx := re.FindStringIndex(tc.input); len(idx) != 2 || idx[0] != 1 || idx[1] != 4 {
				t.Fatalf("FindStringIndex: got %v", idx)
			}
		})
	}
}

func TestEngineErrorsSurfaceUnchanged(t *testing.T) {
	for _, engine := range []Engine{EngineCore, EnginePCRE, EngineRE2} {
		if _, err := Compile("(?i[a])", WithEngine(engine)); err == nil {
			t.Fatalf("%v: expected syntax error", engine)
		}
	}

	if _, err := Compile(`(?<=a)b`, WithEngine(EngineCore)); err == nil {
		t.Fatalf("core: expected lookbehind to be rejected")
	}

	if _, err := Compile("a", WithEngine(Engine(42))); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("unknown engine: got %v", err)
	}
}

func TestParseEngine(t *testing.T) {
	for name, want := range map[string]Engine{
		"":      EngineAuto,
		"auto":  EngineAuto,
		"Core":  EngineCore,
		" pcre": EnginePCRE,
		"RE2":   EngineRE2,
	} {
		got, err := ParseEngine(name)
		if err != nil {
			t.Fatalf("ParseEngine(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseEngine(%q): got %v want %v", name, got, want)
		}
	}

	if _, err := ParseEngine("perl"); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("ParseEngine(perl): got %v", err)
	}

	if got := Engine(9).String(); got != "Engine(9)" {
		t.Fatalf("String out of range: got %q", got)
	}
}

func TestPCRESubexpNames(t *testing.T) {
	re := MustCompile(`(?<=x)(a)(?<tail>b)`)

	if n := re.NumSubexp(); n != 2 {
		t.Fatalf("NumSubexp: got %d", n)
	}

	names := re.SubexpNames()
	if len(names) != 3 || names[1] != "" || names[2] != "tail" {
		t.Fatalf("SubexpNames: got %q", names)
	}

	if all := re.FindAllString("xab yab", -1); len(all) != 1 || all[0] != "ab" {
		t.Fatalf("FindAllString: got %q", all)
	}

	if none := re.FindAllString("nothing", -1); none != nil {
		t.Fatalf("FindAllString no match: got %q", none)
	}
}

func TestPackageHelpers(t *testing.T) {
	ok, err := MatchString(`^\w+$`, "word")
	if err != nil || !ok {
		t.Fatalf("MatchString: ok=%v err=%v", ok, err)
	}

	ok, err = Match(`(a)\1`, []byte("xaa"))
	if err != nil || !ok {
		t.Fatalf("Match backref: ok=%v err=%v", ok, err)
	}

	if _, err := MatchString("(", "x"); err == nil {
		t.Fatalf("MatchString: expected error")
	}

	if got := QuoteMeta("a.b*c"); got != `a\.b\*c` {
		t.Fatalf("QuoteMeta: got %q", got)
	}
}

func TestCaseInsensitiveAuto(t *testing.T) {
	cases := []struct {
		pattern string
		match   []string
		reject  []string
	}{
		{`(?i:hello)`, []string{"hello", "HELLO", "HeLLo"}, []string{"help"}},
		{`(?i)hello`, []string{"hello", "HELLO", "HeLLo"}, []string{"help"}},
		{`(?i:[a])`, []string{"a", "A", "a\nb"}, []string{"b"}},
	}

	for _, tc := range cases {
		re, err := Compile(tc.pattern)
		if err != nil {
			t.Fatalf("compile %q: %v", tc.pattern, err)
		}
		t.Cleanup(re.Release)

		for _, s := range tc.match {
			if !re.MatchString(s) {
				t.Fatalf("%q on %v: expected %q to match", tc.pattern, re.Engine(), s)
			}
		}
		for _, s := range tc.reject {
			if re.MatchString(s) {
				t.Fatalf("%q on %v: expected %q to be rejected", tc.pattern, re.Engine(), s)
			}
		}
	}
}

func TestFoldsCase(t *testing.T) {
	for pattern, want := range map[string]bool{
		`(?i)a`:     true,
		`(?i:a)`:    true,
		`(?si:a)`:   true,
		`(?-i:a)`:   false,
		`(?s-i:a)`:  false,
		`(?:i)`:     false,
		`(?P<i>a)`:  false,
		`\(?i)`:     false,
		`\\(?i)`:    true,
		`[a-z]+`:    false,
		`(?<=i)a`:   false,
		`(?m)^(?i)`: true,
	} {
		if got := foldsCase(pattern); got != want {
			t.Fatalf("foldsCase(%q): got %v want %v", pattern, got, want)
		}
	}
}

func TestNamedGroupsOnEveryEngine(t *testing.T) {
	for _, engine := range []Engine{EngineAuto, EngineCore, EnginePCRE, EngineRE2} {
		t.Run(engine.String(), func(t *testing.T) {
			re, err := Compile(`(?<y>\d)`, WithEngine(engine))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			t.Cleanup(re.Release)

			if names := re.SubexpNames(); len(names) != 2 || names[0] != "" || names[1] != "y" {
				t.Fatalf("SubexpNames: got %q", names)
			}
			if got := re.FindStringSubmatch("a7"); len(got) != 2 || got[1] != "7" {
				t.Fatalf("FindStringSubmatch: got %q", got)
			}
		})
	}

	// A named group next to a lookahead needs regexp2.
	re, err := Compile(`(?<year>\d{4})(?=-)`)
	if err != nil {
		t.Fatalf("compile with lookahead: %v", err)
	}
	if re.Engine() != EnginePCRE {
		t.Fatalf("Engine: got %v", re.Engine())
	}
	if got := re.FindStringSubmatch("2024-05"); len(got) != 2 || got[1] != "2024" {
		t.Fatalf("FindStringSubmatch: got %q", got)
	}
}
