/*
 * ramachandran.go, part of torsion.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chemplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicRamaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title //"Ramachandran plot"
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

// RamaPlot produces a plot, in png format, for the ramachandran data (phi and psi dihedrals)
// contained in data. Each point gets a color, going from red for the first point, through the
// spectrum. Data points with indexes in tag (maximum 4) are highlighted in the plot.
// The plot is saved in plotname.png. Returns an error or nil.
func RamaPlot(data [][]float64, tag []int, title, plotname string) error {
	if data == nil {
		return fmt.Errorf("chemplot.RamaPlot: Given nil data")
	}
	p := basicRamaPlot(title)
	var tagged int //How many residues have been tagged?
	for key, val := range data {
		if len(val) < 2 {
			return fmt.Errorf("chemplot.RamaPlot: point %d has %d elements, 2 needed", key, len(val))
		}
		temp := plotter.XYs{{X: val[0], Y: val[1]}}
		s, err := plotter.NewScatter(temp)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(data))
		if isInInt(tag, key) {
			//with more than 4 tags, the extra residues just get the regular glyph.
			if shape, err := getShape(tagged); err == nil {
				s.GlyphStyle.Shape = shape
				s.GlyphStyle.Radius = vg.Points(4)
			}
			tagged++
		}
		s.GlyphStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
		p.Add(s)
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname+".png")
}

func getShape(tagged int) (draw.GlyphDrawer, error) {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}, nil
	case 1:
		return draw.CircleGlyph{}, nil
	case 2:
		return draw.SquareGlyph{}, nil
	case 3:
		return draw.CrossGlyph{}, nil
	default:
		return draw.RingGlyph{}, fmt.Errorf("Maximum number of taggable residues is 4")
	}
}
