package report

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid adapts a CrossTab to the plotter heatmap interface. Methods run
// along Y, DMIS stages along X.
type grid struct {
	ct *CrossTab
}

func (g grid) Dims() (c, r int)   { return len(g.ct.DMIS), len(g.ct.Methods) }
func (g grid) Z(c, r int) float64 { return float64(g.ct.Counts[r][c]) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// Render draws the frequency heatmap with per-cell counts and writes it
// as a PNG.
func Render(ct *CrossTab, path string) error {
	g := grid{ct: ct}

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(g, pal)
	if hm.Min == hm.Max {
		// A constant grid (for example all zeros) breaks the color
		// scale; widen it so the plot still renders.
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = "DMIS x translation_method -- Frequency Heatmap"
	p.X.Label.Text = "DMIS"
	p.Y.Label.Text = "translation method"
	p.Add(hm)

	p.NominalX(ct.DMIS...)
	p.NominalY(ct.Methods...)

	labels, err := cellLabels(ct)
	if err != nil {
		return err
	}
	p.Add(labels)

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save heatmap: %w", err)
	}
	return nil
}

// cellLabels annotates every cell with its count, like seaborn's
// annot=True.
func cellLabels(ct *CrossTab) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	for r, row := range ct.Counts {
		for c, n := range row {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			xyl.Labels = append(xyl.Labels, strconv.Itoa(n))
		}
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("failed to build cell labels: %w", err)
	}
	return labels, nil
}
