// Package assets embeds the default word lists so the tools run without
// any configured files.
package assets

import "embed"

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed answers.txt allowed.txt
var FS embed.FS
