// Package domain contains the core value objects for tscat.
//
// It is the innermost layer: no dependencies on the file system, the clock,
// or logging, and only pure arithmetic and classification logic.
//
// # Values
//
//   - [Stamp]: a seconds+nanoseconds instant or signed delta, with the
//     borrow/carry arithmetic every timestamp difference goes through
//   - [Format]: which grammar decodes the leading timestamp field
//   - [StreamError]: a failure tagged with the recovery policy it triggers
package domain
