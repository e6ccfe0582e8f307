// Package replib builds repeat libraries for RepeatMasker from the outputs of
// RepeatModeler and Tandem Repeats Finder.
package replib
