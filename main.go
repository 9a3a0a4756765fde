package main

import (
	"os"

	"github.com/lumenray/core/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumenray"
	app.Usage = "render a built-in scene with the CPU ray-tracing core"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "render",
			Usage:       "render a single frame",
			Description: `Render a built-in scene and write the result to a PNG file.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "triangle",
					Usage: "built-in scene name (triangle, checkerboard)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "auto-camera",
					Usage: "replace the scene's camera with one auto-framed from its bounds",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
