/*
Package tableau rebuilds a readable view of each step of a simplex trace.

A solver trace only carries raw tables and partial pivot metadata. For every
step the Renderer works out which variable is basic in each row (by looking
for unit columns), which pivot the *next* step applied to this table, and a
title describing the step. The resulting StepView is turned into a string by
a Formatter: TextFormatter for terminals, or the one in the latex package.

Rendering never fails: rows or steps that cannot be interpreted get a
placeholder label or an "unknown step" title, and are reported to the
configured logger.
*/
package tableau
