// Package locales embeds the message files used for generated report text.
package locales

import "embed"

// Files holds one message file per language, named after its language tag
//go:embed *.yaml
var Files embed.FS
