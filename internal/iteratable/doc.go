/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing
algorithms around scanners and parsers: epsilon-closures during subset
construction, and FIRST/FOLLOW sets during LL(1) analysis. These kinds of
algorithms are often more straightforward to describe as set constructions
and set operations than as loops over slices.

Unusually, Union is destructive: it mutates the receiver in place and
returns it, mirroring the usage pattern of the teacher package this is
adapted from. Difference and Intersect leave both operands unchanged and
return a new set.
*/
package iteratable
