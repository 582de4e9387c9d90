package main

import (
	"os"

	"svut/cmd"
	"svut/internal/version"
	"svut/pkg/logging"
)

// buildVersion is injected at release time via -ldflags "-X main.buildVersion=...".
// When empty (plain go build), the tag is resolved from the git checkout.
var buildVersion = ""

func main() {
	logging.Init(logging.LevelInfo, os.Stderr)

	tag := buildVersion
	if tag == "" {
		tag = version.ResolveTag(".")
	}
	cmd.SetVersion(tag)

	cmd.Execute()
}
