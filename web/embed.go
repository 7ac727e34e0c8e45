// Package web embeds the site's informational pages. Each file under
// pages/ is a Markdown document named after its URL slug.
package web

import "embed"

// PagesFS embeds web/pages/*.md (privacy policy, terms, KVKK notice and
// similar static pages).
//
//go:embed pages/*.md
var PagesFS embed.FS
