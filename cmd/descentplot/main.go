// Command descentplot runs fixed-step gradient descent on a quadratic bowl
// and plots the iterate trajectory to a PNG, printing the iteration trace to
// stdout. Oversized steps make the trajectory visibly diverge, which is the
// point of the exercise.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nmcourse/opt/functions"
	"github.com/nmcourse/opt/univariate"
	"github.com/nmcourse/opt/write"
)

func main() {
	var (
		center  = flag.Float64("center", 100, "location of the quadratic's minimum")
		start   = flag.Float64("start", -40, "initial guess")
		step    = flag.Float64("step", 0.1, "learning rate")
		tol     = flag.Float64("tol", 1e-8, "step-delta convergence tolerance")
		maxIter = flag.Int("maxiter", 100, "iteration cap")
		out     = flag.String("o", "descent.png", "output image path")
	)
	flag.Parse()

	q := functions.Quadratic{Center: *center}

	pts := plotter.XYs{{X: 0, Y: *start}}
	settings := univariate.DefaultSettings()
	settings.MaximumIterations = *maxIter
	settings.WriteSettings = write.StdoutDisplay()
	settings.IterationHook = func(iter int, loc float64) {
		pts = append(pts, plotter.XY{X: float64(iter), Y: loc})
	}

	result, err := univariate.Minimize(q, *start, settings, univariate.NewDescent(*step, *tol))
	if err != nil {
		log.Fatalf("minimizing: %v", err)
	}
	fmt.Printf("\nstatus %v after %d iterations, candidate %g\n", result.Status, result.Iterations, result.Loc)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gradient descent, step size %g", *step)
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Candidate"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		log.Fatalf("building plot: %v", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line, points)

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, *out); err != nil {
		log.Fatalf("saving plot: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
