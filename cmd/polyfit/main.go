// Command polyfit fits a polynomial to a two-column CSV dataset and plots
// the data with the fitted curve.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nmcourse/opt/dataset"
	"github.com/nmcourse/opt/regress"
)

func main() {
	var (
		in     = flag.String("csv", "data.csv", "input CSV file")
		xCol   = flag.Int("xcol", 0, "zero-based x column")
		yCol   = flag.Int("ycol", 1, "zero-based y column")
		header = flag.Bool("header", true, "skip the first CSV record")
		degree = flag.Int("degree", 2, "polynomial degree")
		out    = flag.String("o", "polyfit.png", "output image path")
	)
	flag.Parse()

	x, y, err := dataset.LoadXY(*in, *xCol, *yCol, *header)
	if err != nil {
		log.Fatalf("loading data: %v", err)
	}

	fit, err := regress.PolyFit(x, y, *degree)
	if err != nil {
		log.Fatalf("fitting: %v", err)
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Degree %d fit of %s", *degree, *in)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		log.Fatalf("building plot: %v", err)
	}

	curve := plotter.NewFunction(fit.At)
	curve.Color = color.RGBA{R: 255, A: 255}
	curve.Samples = 200

	p.Add(scatter, curve)
	p.Legend.Add("data", scatter)
	p.Legend.Add("fit", curve)

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, *out); err != nil {
		log.Fatalf("saving plot: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
