/*
 * plot.go, part of neofaunus.
 *
 * Copyright 2018 The neofaunus developers
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

package analysis

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//PlotHistogram writes the normalized histogram as a line plot to the
//named file. The format follows the file extension (png, pdf, svg...).
func PlotHistogram(h *Histogram, title, xlabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "P(" + xlabel + ")"
	p.Add(plotter.NewGrid())
	centers := h.Centers()
	density := h.Normalized()
	pts := make(plotter.XYs, len(centers))
	for i := range centers {
		pts[i].X = centers[i]
		pts[i].Y = density[i]
	}
	if err := plotutil.AddLinePoints(p, pts); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
