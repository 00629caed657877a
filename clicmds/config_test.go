package clicmds_test

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"gitlab.com/fetchk/clicmds"
	"gitlab.com/fetchk/fetchk"
	"gitlab.com/fetchk/filter"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := clicmds.DefaultConfig()
	if err != nil {
		t.Fatalf("error loading default config: %s\n", err)
	}
	if len(cfg.ExcludeRegexes) == 0 {
		t.Fatalf("default config should carry exclusions")
	}

	cfg.URL = "https://example.com/"
	f, err := filter.FromConfig(cfg)
	if err != nil {
		t.Fatalf("default exclusions should compile: %s\n", err)
	}

	var inputs = []struct {
		in       string
		expected fetchk.FetchStatus
	}{
		{"https://example.com/account", fetchk.Valid},
		{"https://example.com/LogOut", fetchk.UserRules},
		{"https://example.com/user/sign-out", fetchk.UserRules},
		{"https://example.com/?logout=1", fetchk.UserRules},
		{"https://other.com/", fetchk.OutOfScope},
	}
	for _, in := range inputs {
		if ret := f.CheckString(in.in); ret != in.expected {
			t.Fatalf("%v did not match %v for %s\n", ret, in.expected, in.in)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	data := []byte(`
url = "http://example.com/"
scope_regexes = ["example\\.com"]
exclude_regexes = ['/logout']
use_context = true
allowed_hosts = ["api.example.com"]
session_id = "abc"

[[always_in_scope]]
domain = "cdn.example.net"
include_subdomains = true
`)
	cfg, err := clicmds.DecodeConfig(data)
	if err != nil {
		t.Fatalf("error decoding: %s\n", err)
	}
	if cfg.URL != "http://example.com/" || len(cfg.ScopeRegexes) != 1 || cfg.ScopeRegexes[0] != `example\.com` {
		t.Fatalf("unexpected config %#v\n", cfg)
	}
	if !cfg.UseContext || cfg.AllowedHosts[0] != "api.example.com" || cfg.SessionID != "abc" {
		t.Fatalf("unexpected context config %#v\n", cfg)
	}
	if len(cfg.AlwaysInScope) != 1 || !cfg.AlwaysInScope[0].IncludeSubdomains {
		t.Fatalf("unexpected always in scope %#v\n", cfg.AlwaysInScope)
	}

	if _, err := clicmds.DecodeConfig([]byte("url = ")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCheckConfigFile(t *testing.T) {
	f, err := ioutil.TempFile("", "fetchk*.toml")
	if err != nil {
		t.Fatalf("error creating config: %s\n", err)
	}
	defer os.Remove(f.Name())
	f.WriteString("scope_regexes = ['example\\.com']\nexclude_regexes = ['/admin']\n")
	f.Close()

	app, out := testApp(t, "")
	err = app.Run([]string{"app", "check", "--config", f.Name(), "http://example.com/", "http://example.com/admin"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if out.String() != "VALID\thttp://example.com/\nUSER_RULES\thttp://example.com/admin\n" {
		t.Fatalf("unexpected output:\n%s\n", out.String())
	}

	// flags replace config excludes
	app, out = testApp(t, "")
	err = app.Run([]string{"app", "check", "--config", f.Name(), "--exclude", "/other", "http://example.com/admin"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if out.String() != "VALID\thttp://example.com/admin\n" {
		t.Fatalf("unexpected output:\n%s\n", out.String())
	}
}

func TestPrintConfig(t *testing.T) {
	app, out := testApp(t, "")
	if err := app.Run([]string{"app", "config"}); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.Contains(out.String(), "exclude_regexes") {
		t.Fatalf("unexpected output:\n%s\n", out.String())
	}
}
