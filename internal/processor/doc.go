// Package processor is the per-line transformation engine. It splits a raw
// input line into tab-separated fields, applies an ordered command plan to
// every field, re-joins the result, and reports whether anything changed so
// the caller can suppress untouched lines.
//
// The splitter treats runs of consecutive tab bytes as a single separator
// and emits only non-empty fields; "a\t\tb" yields two fields, not three.
// This is inherited behavior and part of the tool's observable contract.
package processor
