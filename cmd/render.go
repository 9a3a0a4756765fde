package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/lumenray/core/renderer"
	"github.com/lumenray/core/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var errUnknownBuiltinScene = errors.New("cmd: unknown built-in scene name")

// builtinScenes maps the -scene flag to the in-memory scene builder that
// stands in for the excluded glTF/OBJ loader (§6, §2 component I).
var builtinScenes = map[string]func() *scene.Scene{
	"triangle":     scene.BuiltinTriangle,
	"checkerboard": scene.BuiltinCheckerboard,
}

// RenderFrame renders a single frame of a built-in scene and writes it to
// a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	build, ok := builtinScenes[ctx.String("scene")]
	if !ok {
		return errUnknownBuiltinScene
	}
	sc := build()

	if ctx.Bool("auto-camera") {
		sc.Camera = scene.FrameBounds(sc.Bounds())
		logger.Debug("replaced scene camera with one auto-framed from its bounds")
	}

	width := uint32(ctx.Int("width"))
	height := uint32(ctx.Int("height"))

	r := renderer.New(renderer.Options{})
	if err := r.Resize(width, height); err != nil {
		return err
	}
	if err := r.LoadScene(sc); err != nil {
		return err
	}

	logger.Notice("rendering frame")
	start := time.Now()
	if err := r.Draw(); err != nil {
		return err
	}
	logger.Noticef("rendered frame in %d ms", time.Since(start).Nanoseconds()/1e6)

	out := ctx.String("out")
	if err := writePNG(out, r.Framebuffer()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	displayFrameStats(r.Stats())

	return nil
}

// writePNG converts fb's packed RGBA8 pixels into an image.RGBA and
// encodes it to path.
func writePNG(path string, fb *renderer.Framebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.Width), int(fb.Height)))
	for i, px := range fb.Pixels {
		img.Pix[i*4+0] = uint8(px >> 24)
		img.Pix[i*4+1] = uint8(px >> 16)
		img.Pix[i*4+2] = uint8(px >> 8)
		img.Pix[i*4+3] = uint8(px)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", stats.Triangles)})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", stats.Nodes)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Build time", fmt.Sprintf("%s", stats.BuildTime)})
	table.Append([]string{"Render time", fmt.Sprintf("%s", stats.RenderTime)})
	table.Render()

	logger.Noticef("frame statistics\n%s", buf.String())
}
