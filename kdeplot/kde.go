/*
 * kde.go, part of xyztraj.
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
 */

//Package kdeplot draws kernel-density-estimate scatter plots of paired
//reaction coordinates, so restrained simulations can be checked against the
//experimentally expected region of the coordinate space.
package kdeplot

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"xyztraj"
)

//KDE evaluates a bivariate Gaussian kernel density estimate at every sample
//point of (x, y) and returns the densities. The bandwidth matrix is the
//sample covariance scaled by Scott's rule, n^(-1/(d+4)) with d = 2. At least
//three non-degenerate samples are needed; data lying on a single point or
//line has a singular covariance and is rejected.
func KDE(x, y []float64) ([]float64, error) {
	n := len(x)
	if n != len(y) {
		return nil, Error{fmt.Sprintf("%d x values but %d y values", n, len(y)), "", []string{"KDE"}}
	}
	if n < 3 {
		return nil, Error{fmt.Sprintf("need at least 3 samples, got %d", n), "", []string{"KDE"}}
	}
	data := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		data.Set(i, 0, x[i])
		data.Set(i, 1, y[i])
	}
	cov := mat.NewSymDense(2, nil)
	stat.CovarianceMatrix(cov, data, nil)
	//Scott's rule, squared because it scales the bandwidth, not the covariance.
	h := math.Pow(float64(n), -1.0/6.0)
	cov.ScaleSym(h*h, cov)
	c00 := cov.At(0, 0)
	c01 := cov.At(0, 1)
	c11 := cov.At(1, 1)
	det := c00*c11 - c01*c01
	if det <= 0 || math.IsNaN(det) {
		return nil, Error{"degenerate data: singular covariance matrix", "", []string{"KDE"}}
	}
	inv00 := c11 / det
	inv01 := -c01 / det
	inv11 := c00 / det
	norm := 1.0 / (2.0 * math.Pi * math.Sqrt(det) * float64(n))
	dens := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			q := dx*dx*inv00 + 2.0*dx*dy*inv01 + dy*dy*inv11
			sum += math.Exp(-0.5 * q)
		}
		dens[i] = norm * sum
	}
	return dens, nil
}

//Weigh computes the KDE density of every sample and reorders the dataset by
//increasing density, so the densest points are drawn last and end up on top.
func (D *Dataset) Weigh() error {
	dens, err := KDE(D.X, D.Y)
	if err != nil {
		return errDecorate(err, "Weigh")
	}
	order := make([]int, len(dens))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return dens[order[a]] < dens[order[b]] })
	x := make([]float64, len(order))
	y := make([]float64, len(order))
	d := make([]float64, len(order))
	for k, i := range order {
		x[k] = D.X[i]
		y[k] = D.Y[i]
		d[k] = dens[i]
	}
	D.X, D.Y, D.Density = x, y, d
	return nil
}

//Error is the structure for KDE plotting errors.
type Error struct {
	message  string
	filename string //the input or output file involved, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return "kdeplot: " + err.message
	}
	return fmt.Sprintf("kdeplot %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//errDecorate is a helper function that asserts that the error implements
//xyztraj.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(xyztraj.Error)
	err2.Decorate(caller)
	return err2
}
