// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"regexp"
	"strings"
)

var (
	// labels are 1-62 chars, the TLD is alphabetic only
	domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,60}[a-z0-9])?\.)+[a-z]{2,}$`)
	// a subdomain is a single DNS label
	subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)
)

// Normalize trims and lowercases the input, then strips a leading http(s) scheme
// and trailing slashes
func Normalize(input string) string {
	v := strings.ToLower(strings.TrimSpace(input))

	if after, ok := strings.CutPrefix(v, "https://"); ok {
		v = after
	} else if after, ok := strings.CutPrefix(v, "http://"); ok {
		v = after
	}

	return strings.TrimRight(v, "/")
}

// ValidDomain expects an already normalized value
func ValidDomain(s string) bool {
	return domainRegex.MatchString(s)
}

// ValidSubdomain expects an already normalized value
func ValidSubdomain(s string) bool {
	return subdomainRegex.MatchString(s)
}

// FirstLabel returns the leftmost label of a domain
func FirstLabel(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	return label
}
