// Package phpserde decodes the textual serialization format produced by PHP's
// native serialize() function into an immutable in-memory value tree.
//
// The [Parse] function walks the input in a single left-to-right pass and
// returns a [Value]. Primitives map to [Null], [Bool], [Int], [Float] and
// [String]; PHP arrays become [*Array] (an insertion-ordered mapping from
// Value to Value) and PHP objects become [*Object] (a class name plus an
// insertion-ordered attribute mapping).
//
// PHP's back-references (the R token) are resolved against the values already
// produced during the same parse. A resolved reference is the identical shared
// instance, not a structural copy, so aliasing in the source data is preserved
// in the decoded tree. Values are immutable once Parse returns, which makes
// that sharing safe.
//
// String lengths in this format count encoded bytes, not characters. By
// default the decoder assumes UTF-8 and charges each character its UTF-8
// width; [Decoder.WithSingleByteLengths] switches to a one-byte-per-character
// model for payloads produced with a single-byte charset.
//
// Decoding is a pure function of the input and the [Decoder] configuration.
// There is no encoder and no streaming mode.
package phpserde
