// Package sentiment implements the comment emotion scoring and aggregation engine.
//
// Scoring is a deterministic keyword heuristic: each emotion category has a fixed
// lexicon of substrings, matches accumulate additive weight on top of a small
// baseline, punctuation and glyph-run heuristics add bonuses, and the result is
// normalized into a probability-like distribution over the six categories.
// Everything here is a pure function over domain value types.
package sentiment
