/*
 * histogram.go, part of torsion.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"fmt"
	"image/color"

	"github.com/chiangles/torsion/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AngleTitle returns a title for the histogram of n values of the dihedral
// angle in residues resName, preceded by prev and followed by next.
// Empty neighbour names are shown as "*".
func AngleTitle(angle, resName, prev, next string, n int) string {
	if prev == "" {
		prev = "*"
	}
	if next == "" {
		next = "*"
	}
	return fmt.Sprintf("%s values in %s (%d values)\nChain: %s-%s-%s", angle, resName, n, prev, resName, next)
}

// AngleHistogram plots the histogram d, with the angle axis fixed
// between -180 and 180, and saves it in plotname.png.
func AngleHistogram(d *histo.Data, title, plotname string) error {
	if d == nil {
		return fmt.Errorf("chemplot.AngleHistogram: Given nil data")
	}
	dividers := d.CopyDividers()
	values := d.View()
	bins := make([]plotter.HistogramBin, len(values))
	for i, v := range values {
		bins[i] = plotter.HistogramBin{Min: dividers[i], Max: dividers[i+1], Weight: v}
	}
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     dividers[len(dividers)-1] - dividers[0],
		FillColor: color.RGBA{R: 70, G: 110, B: 200, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Degrees"
	p.Y.Label.Text = "Count"
	if d.Normalized() {
		p.Y.Label.Text = "Frequency"
	}
	p.X.Min = -180
	p.X.Max = 180
	p.Add(plotter.NewGrid(), h)
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname+".png")
}

// AngleValuesHistogram bins values, in degrees, in bins bins between -180 and 180
// and plots the resulting histogram in plotname.png. Nothing is done for empty values.
func AngleValuesHistogram(values []float64, bins int, title, plotname string) error {
	if len(values) == 0 {
		return nil
	}
	if bins < 1 {
		return fmt.Errorf("chemplot.AngleValuesHistogram: %d bins requested", bins)
	}
	return AngleHistogram(histo.NewData(histo.AngleDividers(bins), values), title, plotname)
}
