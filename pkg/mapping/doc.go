// Package mapping models the configuration dictionaries that describe
// how tabular source columns, literals and defaults populate request
// model attributes. Flat dot-path keys expand into nested trees, trees
// deep-merge, and individual values parse into a small tagged variant
// (column reference, literal, column-with-default) consumed by the
// populate engine.
package mapping
