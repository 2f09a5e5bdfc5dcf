package match

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"User Auth", "user auth"},
		{"  padded  ", "padded"},
		{"MiXeD Case", "mixed case"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	res := Match([]string{"Dark Mode", "Export"}, []string{"dark mode", "Import"})
	if len(res.Pairs) != 1 || res.Pairs[0] != (Pair{Spec: 0, Impl: 0}) {
		t.Errorf("Pairs = %v, want [{0 0}]", res.Pairs)
	}
	if len(res.UnmatchedSpec) != 1 || res.UnmatchedSpec[0] != 1 {
		t.Errorf("UnmatchedSpec = %v, want [1]", res.UnmatchedSpec)
	}
	if len(res.UnmatchedImpl) != 1 || res.UnmatchedImpl[0] != 1 {
		t.Errorf("UnmatchedImpl = %v, want [1]", res.UnmatchedImpl)
	}
}

func TestMatchDuplicateImplFirstWins(t *testing.T) {
	res := Match([]string{"login"}, []string{"Login", "LOGIN"})
	if len(res.Pairs) != 1 || res.Pairs[0].Impl != 0 {
		t.Errorf("Pairs = %v, want match against impl index 0", res.Pairs)
	}
	if len(res.UnmatchedImpl) != 1 || res.UnmatchedImpl[0] != 1 {
		t.Errorf("UnmatchedImpl = %v, want [1]", res.UnmatchedImpl)
	}
}

func TestMatchDuplicateSpecFirstWins(t *testing.T) {
	res := Match([]string{"login", "Login"}, []string{"login"})
	if len(res.Pairs) != 1 || res.Pairs[0].Spec != 0 {
		t.Errorf("Pairs = %v, want match for spec index 0", res.Pairs)
	}
	if len(res.UnmatchedSpec) != 1 || res.UnmatchedSpec[0] != 1 {
		t.Errorf("UnmatchedSpec = %v, want [1]", res.UnmatchedSpec)
	}
}

func TestMatchPartitionInvariants(t *testing.T) {
	cases := []struct {
		spec, impl []string
	}{
		{nil, nil},
		{[]string{"a"}, nil},
		{nil, []string{"a"}},
		{[]string{"a", "b", "c"}, []string{"B", "c", "d"}},
		{[]string{"a", "A", "b"}, []string{"a", "a", "b", "b"}},
	}
	for _, c := range cases {
		res := Match(c.spec, c.impl)
		if len(res.UnmatchedSpec)+len(res.Pairs) != len(c.spec) {
			t.Errorf("Match(%v, %v): spec partition broken: %d unmatched + %d pairs != %d",
				c.spec, c.impl, len(res.UnmatchedSpec), len(res.Pairs), len(c.spec))
		}
		if len(res.UnmatchedImpl)+len(res.Pairs) != len(c.impl) {
			t.Errorf("Match(%v, %v): impl partition broken: %d unmatched + %d pairs != %d",
				c.spec, c.impl, len(res.UnmatchedImpl), len(res.Pairs), len(c.impl))
		}
	}
}

func TestMatchPreservesInputOrder(t *testing.T) {
	res := Match([]string{"x", "a", "y", "b"}, []string{"b", "z", "a"})
	if len(res.UnmatchedSpec) != 2 || res.UnmatchedSpec[0] != 0 || res.UnmatchedSpec[1] != 2 {
		t.Errorf("UnmatchedSpec = %v, want [0 2]", res.UnmatchedSpec)
	}
	if len(res.Pairs) != 2 || res.Pairs[0].Spec != 1 || res.Pairs[1].Spec != 3 {
		t.Errorf("Pairs = %v, want spec order [1 3]", res.Pairs)
	}
	if len(res.UnmatchedImpl) != 1 || res.UnmatchedImpl[0] != 1 {
		t.Errorf("UnmatchedImpl = %v, want [1]", res.UnmatchedImpl)
	}
}
