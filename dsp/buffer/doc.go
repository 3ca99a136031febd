// Package buffer provides the fixed-length audio [Block] that processors
// read from and write to, plus a [Pool] for reusing blocks of one size.
//
// Processors own their output blocks and allocate them once at construction;
// input blocks belong to the host and are only read during Execute.
package buffer
