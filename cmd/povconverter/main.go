package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/shaisc/povconverter"
	"github.com/urfave/cli/v2"
)

const usage = "Needs 2 arguments:\n   1) FONT/IMAGE\n   2) input file name"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// showUsage prints the usage message and exits with status 0.
func showUsage() error {
	fmt.Fprintln(os.Stderr, usage)
	return cli.NewExitError("", 0)
}

func main() {
	app := cli.NewApp()

	app.Name = "povconverter"
	app.Usage = "Convert images and font sheets to C source for a POV display"
	app.ArgsUsage = "FONT|IMAGE FILE"
	app.Version = "1.0.0"
	app.HideHelp = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "preview",
			EnvVars: []string{"POVCONVERTER_PREVIEW"},
			Value:   povconverter.DefaultPreview,
			Usage:   "write the composited image to `FILE`, empty to disable",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce images to at most `N` colors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return showUsage()
		}

		mode, err := povconverter.ParseMode(c.Args().Get(0))
		if err != nil {
			return showUsage()
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		conv := povconverter.New(logger)
		conv.Preview = c.String("preview")
		conv.Colors = c.Int("colors")

		w := bufio.NewWriter(os.Stdout)
		if err := conv.Convert(w, mode, c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := w.Flush(); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
