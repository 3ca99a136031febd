// Package signal provides block-continuous test sources.
//
// Each source owns one output block sized from core.BlockSettings and keeps
// its phase or random state across calls to Next, so consecutive blocks join
// without seams. Reset rewinds a source to its first block.
package signal
