package main

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/urfave/cli"
)

var (
	// GitTag is set at build time.
	GitTag = "n/a"
	// GitSha is set at build time.
	GitSha = "n/a"
)

func main() {
	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = "KSC to JPEG converter"
	app.Version = fmt.Sprintf("%s (%s)", GitTag, GitSha)
	app.ArgsUsage = "<input.ksc> [output.jpeg] | -r [dir]"
	app.Flags = flags()
	app.Action = run

	if err := app.Run(hoistFlags(os.Args)); err != nil {
		log.Fatalf("error: %v", err)
	}
}
