package filter

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// HostRule is how a HostContext treats a host
type HostRule int8

const (
	// AllowedHost is in context
	AllowedHost HostRule = iota + 1
	// IgnoredHost is a known host we do not crawl
	IgnoredHost
	// ExcludedHost must never be accessed
	ExcludedHost
)

// HostContext is a scan context built from host and path lists. Configure it
// fully before handing it to a Builder, it is read only afterwards.
// TODO: support ports in host rules
type HostContext struct {
	allowed       []string
	ignored       []string
	excluded      []string
	excludedPaths []string
}

// NewHostContext with target's host allowed by default
func NewHostContext(target *url.URL) *HostContext {
	c := &HostContext{
		allowed:       make([]string, 0),
		ignored:       make([]string, 0),
		excluded:      make([]string, 0),
		excludedPaths: make([]string, 0),
	}
	if target != nil && target.Hostname() != "" {
		c.allowed = append(c.allowed, strings.ToLower(target.Hostname()))
	}
	return c
}

// AddHosts under the given rule
func (c *HostContext) AddHosts(inputs []string, rule HostRule) {
	if len(inputs) == 0 {
		return
	}
	lowered := mapFunction(inputs, strings.ToLower)

	switch rule {
	case AllowedHost:
		c.allowed = append(c.allowed, lowered...)
	case IgnoredHost:
		c.ignored = append(c.ignored, lowered...)
	case ExcludedHost:
		c.excluded = append(c.excluded, lowered...)
	}
}

// AddExcludedPaths so we don't log out. Full uris contribute only their path.
func (c *HostContext) AddExcludedPaths(inputs []string) {
	for _, input := range inputs {
		if strings.HasPrefix(input, "http") {
			u, err := url.Parse(input)
			if err != nil {
				log.Warn().Err(err).Str("uri", input).Msg("failed to add uri to excluded paths")
				continue
			}
			c.excludedPaths = append(c.excludedPaths, strings.ToLower(u.Path))
			continue
		}
		if !strings.HasPrefix(input, "/") {
			input = "/" + input
		}
		c.excludedPaths = append(c.excludedPaths, strings.ToLower(input))
	}
}

// IsInContext returns true for allowed hosts that are neither ignored nor
// excluded, unless the path is excluded
func (c *HostContext) IsInContext(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil {
		log.Warn().Err(err).Str("uri", uri).Msg("failed to parse uri returning out of context")
		return false
	}
	return c.CheckHost(u.Hostname(), u.Path)
}

// CheckHost in order: excluded host, ignored host, excluded path, allowed host
func (c *HostContext) CheckHost(host, path string) bool {
	host = strings.ToLower(host)
	path = strings.ToLower(path)
	if path == "" {
		path = "/"
	}

	if includeFunction(c.excluded, host) {
		return false
	} else if includeFunction(c.ignored, host) {
		return false
	} else if includeFunction(c.excludedPaths, path) {
		return false
	}
	return includeFunction(c.allowed, host)
}

func mapFunction(vs []string, f func(string) string) []string {
	vsm := make([]string, len(vs))
	for i, v := range vs {
		vsm[i] = f(v)
	}
	return vsm
}

func indexFunction(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}
	return -1
}

func includeFunction(vs []string, t string) bool {
	return indexFunction(vs, t) >= 0
}
