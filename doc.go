/*
 * doc.go, part of xyztraj.
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

/*Package xyztraj is a toolkit for curating XYZ molecular-dynamics trajectories.

It grew out of the bookkeeping that reaction-path calculations force on you:
a scan gets restarted from a later point, rerun at higher resolution around
the peak, and afterwards the pieces have to be stitched back into one
trajectory, often with some frames dropped and one of the legs played
backwards.

	**Capabilities**

    Reads and writes XYZ trajectory files, plain or compressed
	(gzip and zstd, selected by filename suffix).

    Detects which files in a directory are multi-frame trajectories.

    Selects frames with range expressions ("1,3-5,9"), optionally
	reversing a selection, and concatenates selections from several
	files into one combined trajectory, frame text kept verbatim.

    Swaps two atoms across every frame of a trajectory.

    Computes per-frame centroid-centroid distances with mean and
	standard deviation.

    Draws KDE scatter plots of paired reaction coordinates against
	their experimentally expected regions.

The root package only holds the error contracts shared by the subpackages.
The actual work happens in traj/xyz, sel, geo and kdeplot, with a command
line frontend in cmd/xyztraj.
*/
package xyztraj
