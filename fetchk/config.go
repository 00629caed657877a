package fetchk

// AlwaysInScopeDomain is a domain granted scope regardless of scope rules
type AlwaysInScopeDomain struct {
	Domain            string `toml:"domain"`
	IncludeSubdomains bool   `toml:"include_subdomains"`
}

// Config for a crawl session's fetch filter
type Config struct {
	URL            string                `toml:"url"`
	ScopeRegexes   []string              `toml:"scope_regexes"`   // tested against the full uri
	ExcludeRegexes []string              `toml:"exclude_regexes"` // user rules, applied after scope
	AlwaysInScope  []AlwaysInScopeDomain `toml:"always_in_scope"`

	// UseContext switches scope admission to a host context built from the lists below
	UseContext    bool     `toml:"use_context"`
	AllowedHosts  []string `toml:"allowed_hosts"`
	IgnoredHosts  []string `toml:"ignored_hosts"`
	ExcludedHosts []string `toml:"excluded_hosts"`
	ExcludedPaths []string `toml:"excluded_paths"`

	DataPath  string `toml:"data_path"`
	SessionID string `toml:"session_id"` // generated when empty
}
