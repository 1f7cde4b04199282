/*
Cwscan enumerates search templates for continuous gravitational-wave pulsar
searches.

Contents

  Program overview
  Command line usage
  Config file format
  Algorithm outline


Program overview

A continuous-wave search looks for a long-lived nearly-monochromatic signal
whose received frequency drifts with the pulsar spindown and with the
Doppler modulation of the Earth's orbit.  The search space is therefore a
sky direction plus a handful of frequency derivatives.  Matched filtering
is only sensitive within a small "mismatch" of the true parameters, so the
space is tiled with discrete templates.

Cwscan places those templates.  Input is a region: a sky patch given as a
spherical polygon plus a box in frequency and spindowns.  Output is the
list of templates covering the region, one per line, such that no signal in
the region is farther than the configured mismatch from its nearest
template, using close to the fewest possible templates.  The covering set
is an A* lattice in canonical coordinates where the parameter-space metric
is flat, scaled and sheared to the metric.

Sample run:

Given the config file region.conf

  skyRegion = (1.0, 0.5)
  refTime   = 55555
  startTime = 55555
  duration  = 1e6
  f0        = 100
  f1dot     = -1e-10
  f1dotBand = 2e-10
  mismatch  = 0.01

the command "cwscan -c region.conf" lists the templates spanning the f1dot
interval at the fixed sky position, RA and Dec in sexagesimal columns and
spin coefficients in the remaining columns.


Command line usage

  cwscan -c <config-file>    list templates covering the configured region
  cwscan -h                  display help and quick reference
  cwscan -v                  display version and copyright


Config file format

Lines are either a bare keyword (headings, noheadings, equatorial,
ecliptic) or key = value.  # starts a comment line.  Keys are skyRegion,
refTime, startTime, duration, f0, f0Band, f1dot, f1dotBand, f2dot,
f2dotBand, f3dot, f3dotBand, and mismatch.  Epochs are modified Julian
dates or Gregorian calendar dates.  The sky region is a list of (α,δ)
pairs in equatorial radians; a single pair is a degenerate region matching
only that direction, and the patch must lie within a single ecliptic
hemisphere.


Algorithm outline

The physical parameters map to canonical coordinates (w0, kX, kY, w1, ...)
in which the mismatch between nearby parameter sets is approximately the
squared Euclidean distance under a constant metric.  The scanner factors
that metric, builds the A* lattice basis for the region's dimension, and
rescales it so the lattice covering radius equals the square root of the
configured mismatch.  Starting from the canonical image of the region
midpoint it then walks the integer lattice outward axis by axis, exhausting
positive steps before negative ones and collapsing each exhausted axis
before moving to the next.  It visits only lattice points whose physical
image lies inside the region, and reaches an inside point only when the
axis-by-axis path to it from the origin stays inside as well.  The walk is
deterministic, so a run
can be checkpointed and resumed by saving and restoring the lattice index.

-------------
Public domain.
*/
package cwscan
