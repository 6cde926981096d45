package main

import (
	"github.com/samber/lo"
	"github.com/vidstrip/vidstrip/cmd"
	"github.com/vidstrip/vidstrip/config"
	"github.com/vidstrip/vidstrip/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
