package main

import (
	"github.com/bornholm/scribe/internal/command"
	"github.com/bornholm/scribe/internal/command/article"
)

func main() {
	command.Main(
		"scribe",
		"Scribe administration tool",
		article.Command(),
	)
}
