package cli

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	want := []string{
		"register", "login", "logout", "profile", "elevate", "ping",
		"fill", "month", "drafts",
		"completion", "summary", "billing", "export",
	}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, w := range want {
		if !names[w] {
			t.Fatalf("command %q is not registered", w)
		}
	}
}

func TestRootConfigFlagsDeclared(t *testing.T) {
	pf := rootCmd.PersistentFlags()
	for _, name := range []string{"server", "timeout", "data-dir", "config"} {
		if pf.Lookup(name) == nil {
			t.Fatalf("persistent flag %q is not declared", name)
		}
	}
	for _, short := range []string{"a", "t", "d", "c"} {
		if pf.ShorthandLookup(short) == nil {
			t.Fatalf("shorthand -%s is not declared", short)
		}
	}
}
