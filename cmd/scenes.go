package cmd

import (
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and the scene files found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenesDir := ctx.String("scenes-dir")
	if scenesDir == "" {
		scenesDir = scene.FindScenesDir()
	}

	groups, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	writeSceneTable(stdout, groups)
	return nil
}

func writeSceneTable(w io.Writer, groups []scene.SceneGroup) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Scene", "Name", "Description"})
	for _, group := range groups {
		for _, info := range group.Scenes {
			id := info.ID
			if info.Type == "file" {
				id = info.FilePath
			}
			table.Append([]string{group.Name, id, info.DisplayName, info.Description})
		}
	}
	table.Render()
}
