// Package textstats computes word, character, and sentence statistics for raw
// text and runs regular-expression searches over it.
//
// Analyze and Search are pure: they share no state between calls and never
// touch the filesystem. Words are whitespace-separated fields with no
// normalization; sentences are the fragments left after splitting on runs of
// '.', '!', or '?', including a trailing empty fragment after a final
// delimiter. Character counts are Unicode code points, whitespace included.
package textstats
