package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line application.
func NewApp() *cli.App {
	// The default version flag claims -v, which is the verbosity flag here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render spheres with a recursive path tracer"
	app.Version = "0.1.0"
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
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace a scene and write the image. Plain-text PPM is written to stdout unless
--out names a file; files ending in .png are written as PNG instead.

Camera and sampling flags override the values stored in the scene.`,
			Flags:  RenderFlags,
			Action: RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list available scenes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scenes-dir",
					Usage: "directory searched for .json scene files (default: ./scenes or ../scenes)",
				},
			},
			Action: ListScenes,
		},
	}
	return app
}
