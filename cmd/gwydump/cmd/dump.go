package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-gwyfile/gwyfile"
)

// dumpCmd prints a summary of every channel and graph in a GWY file.
var dumpCmd = &cobra.Command{
	Use:   "dump <file.gwy>",
	Short: "Print the channels and graphs of a GWY file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := gwyfile.Load(path)
		if err != nil {
			return err
		}
		log.Infow("loaded", "path", path, "items", f.Root().Len())

		for _, id := range f.ChannelIDs() {
			channel, err := f.Channel(id)
			if err != nil {
				return err
			}
			printChannel(id, channel)
		}
		for _, id := range f.GraphIDs() {
			graph, err := f.Graph(id)
			if err != nil {
				return err
			}
			printGraph(id, graph)
		}
		return nil
	},
}

func printChannel(id int, c *gwyfile.Channel) {
	title := "(untitled)"
	if c.Title != nil {
		title = *c.Title
	}
	fmt.Printf("channel %d: %s\n", id, title)
	fmt.Printf("  data: %dx%d, %g x %g %s, z unit %q\n",
		c.Data.XRes, c.Data.YRes, c.Data.XReal, c.Data.YReal, c.Data.SIUnitXY, c.Data.SIUnitZ)
	if c.Mask != nil {
		fmt.Printf("  mask: %dx%d\n", c.Mask.XRes, c.Mask.YRes)
	}
	if c.Show != nil {
		fmt.Printf("  presentation: %dx%d\n", c.Show.XRes, c.Show.YRes)
	}
	if c.PointSelection != nil {
		fmt.Printf("  point selections: %d\n", len(c.PointSelection.Points))
	}
	if c.PointerSelection != nil {
		fmt.Printf("  pointer selections: %d\n", len(c.PointerSelection.Points))
	}
	if c.LineSelection != nil {
		fmt.Printf("  line selections: %d\n", len(c.LineSelection.Lines))
	}
	if c.RectangleSelection != nil {
		fmt.Printf("  rectangle selections: %d\n", len(c.RectangleSelection.Rectangles))
	}
	if c.EllipseSelection != nil {
		fmt.Printf("  ellipse selections: %d\n", len(c.EllipseSelection.Ellipses))
	}
}

func printGraph(id int, g *gwyfile.GraphModel) {
	fmt.Printf("graph %d: %q, %d curves\n", id, g.Title, len(g.Curves))
	for i, curve := range g.Curves {
		fmt.Printf("  curve %d: %q, %d points\n", i, curve.Description, curve.NData())
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
