// Command ternarydemo draws a ternary plot of random compositions.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/gogpu/ternary"
	"github.com/gogpu/ternary/bin"
	"github.com/gogpu/ternary/render"
	"github.com/gogpu/ternary/text"
)

func main() {
	var (
		size     = flag.Int("size", 600, "image width and height")
		output   = flag.String("output", "ternary.png", "output file")
		scale    = flag.Float64("scale", 100, "ternary sum")
		rotation = flag.Float64("rotation", 0, "triangle rotation in degrees")
		minT     = flag.Float64("tmin", 0, "minimum of the top axis")
		minL     = flag.Float64("lmin", 0, "minimum of the left axis")
		minR     = flag.Float64("rmin", 0, "minimum of the right axis")
		points   = flag.Int("points", 400, "number of random points")
		grid     = flag.Int("hexbin", 0, "hexbin grid size, 0 to scatter")
		workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "goroutines for binning")
		labels   = flag.String("labels", "axis", "label rotation: axis, horizontal or manual")
		lang     = flag.String("lang", "en", "locale for tick labels")
		verbose  = flag.Bool("v", false, "log limit changes")
	)
	flag.Parse()

	if *verbose {
		ternary.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := ternary.ParseRotationMode(*labels)
	if err != nil {
		log.Fatal(err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid locale: %v", err)
	}

	margin := float64(*size) / 8
	ax, err := ternary.NewAxes(
		ternary.WithScale(*scale),
		ternary.WithRotation(*rotation),
		ternary.WithViewport(ternary.NewRect(margin, margin, float64(*size)-margin, float64(*size)-margin)),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := ax.SetMin(*minT, *minL, *minR); err != nil {
		log.Fatal(err)
	}

	names := [3]string{"Top", "Left", "Right"}
	for i, a := range []ternary.Axis{ternary.T, ternary.L, ternary.R} {
		axis := ax.Axis(a)
		axis.SetLabel(names[i])
		axis.SetFormatter(ternary.NumberFormatter{Lang: tag, Digits: -1})
		if err := axis.SetLabelRotationMode(mode); err != nil {
			log.Fatal(err)
		}
		if err := axis.SetTickLabelRotationMode(mode); err != nil {
			log.Fatal(err)
		}
	}

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = src.Close()
	}()

	c := render.NewCanvas(*size, *size, render.DefaultStyle(src.Face(10, text.WithDPI(ax.DPI()))))
	data := randomCompositions(*points, *scale)

	if *grid > 0 {
		cells, err := bin.Hexbin(data, *grid, bin.WithScale(*scale), bin.WithWorkers(*workers))
		if err != nil {
			log.Fatal(err)
		}
		c.FillCells(ax, cells, render.Shade(color.RGBA{0x1f, 0x5f, 0xa8, 0xff}))
	}
	if err := c.DrawAxes(ax); err != nil {
		log.Fatalf("Failed to draw axes: %v", err)
	}
	if *grid == 0 {
		if err := c.Scatter(ax, data, color.RGBA{0xc0, 0x30, 0x30, 0xff}); err != nil {
			log.Printf("Scatter: %v", err)
		}
	}

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Plot saved to %s (%dx%d)\n", *output, *size, *size)
}

// randomCompositions returns n triples summing to scale, drawn uniformly
// from the triangle.
func randomCompositions(n int, scale float64) []ternary.Triple {
	r := rand.New(rand.NewPCG(1, 2))
	out := make([]ternary.Triple, n)
	for i := range out {
		u, v := r.Float64(), r.Float64()
		if u+v > 1 {
			u, v = 1-u, 1-v
		}
		out[i] = ternary.Tri(u, v, 1-u-v).Mul(scale)
	}
	return out
}
