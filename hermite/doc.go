/*
Package hermite evaluates cubic curve segments given by two end points and
two tangents, and builds arc-length tables over such curves.

A segment runs from p0 to p1. The tangents t0 and t1 are turned into the
inner Bezier handles

	b = p0 + t0
	c = p1 - t1

and the curve is evaluated with de Casteljau's algorithm. Seen as a Hermite
curve the derivatives at the end points are 3⋅t0 and 3⋅t1. Together with
the position the evaluator returns the unit direction of the derivative,
which callers use as the forward axis of a moving frame.

Raw curve parameters do not advance uniformly in distance. An ArcTable
samples a curve at evenly spaced parameters, accumulates chord lengths and
normalizes them to [0,1]; looking up a normalized distance in the table
yields a point which moves (approximately) at constant speed along the
curve. The more samples a table holds, the closer it gets to true
arc-length parametrization.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hermite
