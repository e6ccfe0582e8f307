// Package writers owns output destinations for the maskprep tools: opening
// --out targets and recognising downstream consumers that hang up early.
package writers
