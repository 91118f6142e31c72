package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its prefix-free Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// NewCodeTable walks t and assigns each leaf the path leading to it, with
// 0 for a left descent and 1 for a right descent.
//
// A tree that is a single leaf has an empty path; its symbol is assigned
// the one-bit code "0" instead, since an empty code cannot be told apart
// in a bit stream.
//
func NewCodeTable(t *Tree) *CodeTable {
	ct := &CodeTable{}
	var hasMinMax bool
	t.walk(func(n *node, path Code) {
		if !n.isLeaf() {
			return
		}
		if path.Size == 0 {
			path = path.Append(0)
		}

		ct.codes[n.symbol] = path
		ct.count++

		size := path.Size
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	})
	return ct
}

// Lookup returns the Code for symbol, if it has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol
// in the byte alphabet, 0 for symbols without a code.
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols without a code are omitted.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ct.count)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		if hc := ct.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
