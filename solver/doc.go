/*
Package solver computes the minimum total adjustment cost needed to make
at least two values of an integer sequence share a common factor greater
than one.

If two values already share a factor the cost is zero. Otherwise the
solver sweeps every candidate factor up to MaxValue, walking its
multiples and looking each multiple up in a frequency table built from
the sequence: a value equal to the multiple is usable at cost 0, a value
one below it at cost 1 and a value two below it at cost 2. The answer
for a candidate factor is the sum of the two cheapest usable entries,
and the overall answer is the minimum over all candidates.
*/
package solver
