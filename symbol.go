package hufftree

// Symbol represents one byte of the input alphabet.
type Symbol byte

// NumSymbols is the number of distinct Symbols.
const NumSymbols = 256

// MaxCodeSize is the bit length of the longest possible code.  A strict
// binary tree with NumSymbols leaves is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1
