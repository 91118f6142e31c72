package hufftree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// DescriptorFormat selects how a Tree is serialized.  Both formats list the
// nodes in pre-order: a branch marker for an internal node, or a leaf
// marker plus the leaf's symbol.
type DescriptorFormat uint8

const (
	// FormatSplit keeps structure and symbols in separate channels:
	//
	//     1 byte              number of leaves, minus 1
	//     ceil((2n-1)/8) bytes  2n-1 structure bits, MSB first, zero padded
	//                         (0 = branch, 1 = leaf)
	//     n bytes             leaf symbols, in pre-order
	//
	FormatSplit DescriptorFormat = iota

	// FormatInterleaved writes ASCII '0' for a branch, and ASCII '1'
	// followed by the raw symbol byte for a leaf.  It has no length
	// prefix; the pre-order walk of a strict binary tree terminates
	// itself.
	FormatInterleaved
)

const (
	branchMarker = '0'
	leafMarker   = '1'
)

// maxNodes is the number of nodes in a strict binary tree with NumSymbols
// leaves.
const maxNodes = 2*NumSymbols - 1

var formatNames = [...]string{
	FormatSplit:       "split",
	FormatInterleaved: "interleaved",
}

// ParseDescriptorFormat returns the DescriptorFormat with the given name.
func ParseDescriptorFormat(str string) (DescriptorFormat, error) {
	for format, name := range formatNames {
		if strings.EqualFold(str, name) {
			return DescriptorFormat(format), nil
		}
	}
	return 0, fmt.Errorf("hufftree: unknown descriptor format %q", str)
}

// String returns the name of this format.
func (format DescriptorFormat) String() string {
	if int(format) < len(formatNames) {
		return formatNames[format]
	}
	return fmt.Sprintf("DescriptorFormat(%d)", uint8(format))
}

var _ fmt.Stringer = DescriptorFormat(0)

// AppendDescriptor appends the serialized form of t to dst.
func (t *Tree) AppendDescriptor(dst []byte, format DescriptorFormat) []byte {
	switch format {
	case FormatSplit:
		return t.appendSplit(dst)
	case FormatInterleaved:
		return t.appendInterleaved(dst)
	}
	assert.Assertf(false, "unknown descriptor format %v", format)
	return dst
}

func (t *Tree) appendSplit(dst []byte) []byte {
	numLeaves := t.Len()
	symbols := make([]byte, 0, numLeaves)

	buf := bytes.NewBuffer(dst)
	buf.WriteByte(byte(numLeaves - 1))

	w := bitio.NewWriter(buf)
	t.walk(func(n *node, _ Code) {
		leaf := n.isLeaf()
		if leaf {
			symbols = append(symbols, byte(n.symbol))
		}
		err := w.WriteBool(leaf)
		assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	})
	err := w.Close()
	assert.Assertf(err == nil, "flush to bytes.Buffer failed: %v", err)

	buf.Write(symbols)
	return buf.Bytes()
}

func (t *Tree) appendInterleaved(dst []byte) []byte {
	t.walk(func(n *node, _ Code) {
		if n.isLeaf() {
			dst = append(dst, leafMarker, byte(n.symbol))
		} else {
			dst = append(dst, branchMarker)
		}
	})
	return dst
}

// ParseDescriptor reconstructs a Tree from the descriptor at the start of
// data, and returns the Tree along with the bytes of data that follow the
// descriptor.  The Tree has the same shape and leaf symbols as the one that
// was serialized; all weights are 0.
//
// Any descriptor that does not describe a strict binary tree with distinct
// leaf symbols is rejected with an error wrapping ErrMalformedDescriptor.
//
func ParseDescriptor(data []byte, format DescriptorFormat) (*Tree, []byte, error) {
	switch format {
	case FormatSplit:
		return parseSplit(data)
	case FormatInterleaved:
		return parseInterleaved(data)
	}
	return nil, nil, fmt.Errorf("hufftree: unknown descriptor format %v", format)
}

func parseSplit(data []byte) (*Tree, []byte, error) {
	if len(data) == 0 {
		return nil, nil, malformedf("missing leaf count")
	}

	numLeaves := int(data[0]) + 1
	numBits := 2*numLeaves - 1
	structLen := (numBits + 7) / 8
	totalLen := 1 + structLen + numLeaves
	if len(data) < totalLen {
		return nil, nil, malformedf("need %d bytes for %d leaves, have %d", totalLen, numLeaves, len(data))
	}
	structure := data[1 : 1+structLen]
	symbols := data[1+structLen : totalLen]

	r := bitio.NewReader(bytes.NewReader(structure))
	p := newTreeParser(numLeaves)
	var nextSymbol int
	for i := 0; i < numBits; i++ {
		leaf, err := r.ReadBool()
		if err != nil {
			return nil, nil, malformedf("structure bit %d: %v", i, err)
		}

		if !leaf {
			err = p.branch()
		} else if nextSymbol >= numLeaves {
			err = malformedf("more than %d leaves", numLeaves)
		} else {
			err = p.leaf(Symbol(symbols[nextSymbol]))
			nextSymbol++
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if !p.complete() {
		return nil, nil, malformedf("%d structure bits leave a dangling branch", numBits)
	}

	if padBits := uint8(structLen*8 - numBits); padBits != 0 {
		pad, err := r.ReadBits(padBits)
		if err != nil {
			return nil, nil, malformedf("padding: %v", err)
		}
		if pad != 0 {
			return nil, nil, malformedf("non-zero padding bits %#x", pad)
		}
	}

	return p.tree(), data[totalLen:], nil
}

func parseInterleaved(data []byte) (*Tree, []byte, error) {
	p := newTreeParser(NumSymbols)
	i := 0
	for !p.complete() {
		if i >= len(data) {
			return nil, nil, malformedf("descriptor ends after %d bytes with a dangling branch", i)
		}

		var err error
		switch marker := data[i]; marker {
		case branchMarker:
			err = p.branch()
			i++
		case leafMarker:
			if i+1 >= len(data) {
				return nil, nil, malformedf("leaf marker at offset %d has no symbol", i)
			}
			err = p.leaf(Symbol(data[i+1]))
			i += 2
		default:
			err = malformedf("unknown marker %q at offset %d", marker, i)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return p.tree(), data[i:], nil
}

// treeParser rebuilds a Tree from a pre-order sequence of branch and leaf
// tokens.
type treeParser struct {
	t       *Tree
	pending []pendingBranch
	seen    [NumSymbols]bool
	hasRoot bool
}

// pendingBranch is an internal node still waiting for its right child.
type pendingBranch struct {
	index   nodeIndex
	hasLeft bool
}

func newTreeParser(numLeaves int) *treeParser {
	return &treeParser{
		t:       &Tree{nodes: make([]node, 0, 2*numLeaves-1), root: noNode},
		pending: make([]pendingBranch, 0, log2uint32(uint32(numLeaves))),
	}
}

func (p *treeParser) complete() bool {
	return p.hasRoot && len(p.pending) == 0
}

func (p *treeParser) branch() error {
	index, err := p.attach(node{left: noNode, right: noNode})
	if err != nil {
		return err
	}
	p.pending = append(p.pending, pendingBranch{index: index})
	return nil
}

func (p *treeParser) leaf(symbol Symbol) error {
	if p.seen[symbol] {
		return malformedf("symbol %#02x appears in more than one leaf", byte(symbol))
	}
	p.seen[symbol] = true
	_, err := p.attach(node{symbol: symbol, left: noNode, right: noNode})
	return err
}

func (p *treeParser) attach(n node) (nodeIndex, error) {
	if p.complete() {
		return noNode, malformedf("node after the tree is complete")
	}
	if len(p.t.nodes) >= maxNodes {
		return noNode, malformedf("more than %d nodes", maxNodes)
	}

	index := nodeIndex(len(p.t.nodes))
	p.t.nodes = append(p.t.nodes, n)

	if !p.hasRoot {
		p.hasRoot = true
		p.t.root = index
		return index, nil
	}

	top := &p.pending[len(p.pending)-1]
	parent := &p.t.nodes[top.index]
	if !top.hasLeft {
		parent.left = index
		top.hasLeft = true
	} else {
		parent.right = index
		p.pending = p.pending[:len(p.pending)-1]
	}
	return index, nil
}

func (p *treeParser) tree() *Tree {
	assert.Assertf(p.complete(), "tree is incomplete")
	return p.t
}
