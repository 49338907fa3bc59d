package cmd

import (
	"github.com/achilleasa/go-sbvh/log"
	"github.com/urfave/cli"
)

var logger = log.New("go-sbvh")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
