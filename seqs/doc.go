/*
Package seqs provides lazy counterparts to the eager transforms in package
seq, built on Go 1.23+ iterators (iter.Seq).

It includes:

  - **Transformations**: [Map], [Filter], [FlatMap], [Concat], [Enumerate].
  - **Sinks**: [Reduce], [First], [Last], [Any], [All], [Count], [Sum], [Min], [Max].
  - **Generators**: [Range], [Repeat].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile].
  - **Bridging**: [Collect] gathers a stream back into a dense sequence.

Everything here is lazy and single-pass: no element is touched until the
consumer ranges over the result, and iteration stops as soon as the consumer
breaks. Sparse sequences enter a pipeline through Seq.Values or Seq.All,
which skip absent slots, so streams themselves are always dense.
*/
package seqs
