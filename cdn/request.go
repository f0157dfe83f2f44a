// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cdn

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Request asks the CDN to purge a fetched resource and eagerly regenerate
// resized variants of it.
type Request struct {
	// Network is informational; it is not passed to the CDN.
	Network     string
	URL         string
	Breakpoints []int
}

// EagerPayload renders the eager transform list in the form the cld uploader
// expects, e.g. `[{ "width": 24 }, { "width": 32 }]`.
func EagerPayload(widths []int) string {
	parts := lo.Map(widths, func(w int, _ int) string {
		return fmt.Sprintf(`{ "width": %d }`, w)
	})
	return "[" + strings.Join(parts, ", ") + "]"
}

// Args is the argument list for an explicit invalidation of r.
func (r Request) Args() []string {
	return []string{
		"uploader",
		"explicit",
		r.URL,
		"type=fetch",
		"invalidate=true",
		"eager=" + EagerPayload(r.Breakpoints),
	}
}

// PublicURL joins base and the slash separated path elements.
func PublicURL(base string, elems ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(elems, "/")
}
