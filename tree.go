package hufftree

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Tree is a strict binary Huffman tree: every node is either a leaf that
// carries one Symbol, or an internal node with exactly two children.
//
// Nodes live in an arena and refer to their children by index.  A Tree is
// never modified after it is built, so it is safe to share between
// goroutines.
//
type Tree struct {
	nodes []node
	root  nodeIndex
}

type nodeIndex int32

const noNode = nodeIndex(-1)

type node struct {
	symbol Symbol
	weight uint64
	left   nodeIndex
	right  nodeIndex
}

func (n *node) isLeaf() bool {
	return n.left == noNode
}

// BuildTree builds the Huffman tree for the given frequencies.  The result
// has one leaf per symbol in freqs and minimal weighted path length.
//
// Construction is deterministic: nodes of equal weight are merged in the
// order they were created, with the initial leaves created in ascending
// symbol order.  Identical frequencies therefore always produce identical
// trees.
//
// If freqs is empty, BuildTree returns ErrEmptyAlphabet.  If freqs has
// exactly one symbol, the tree is a single leaf.
//
func BuildTree(freqs Frequencies) (*Tree, error) {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	t := &Tree{nodes: make([]node, 0, 2*len(symbols)-1)}

	// Step 1: build a minheap of leaves.

	h := weightHeap{tree: t, list: make([]nodeIndex, 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, t.addLeaf(symbol, freqs[symbol]))
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeIndex)
		b := heap.Pop(&h).(nodeIndex)
		heap.Push(&h, t.addBranch(a, b))
	}

	t.root = heap.Pop(&h).(nodeIndex)
	return t, nil
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) nodeIndex {
	index := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{symbol: symbol, weight: weight, left: noNode, right: noNode})
	return index
}

func (t *Tree) addBranch(left, right nodeIndex) nodeIndex {
	assert.Assertf(left >= 0 && int(left) < len(t.nodes), "left child %d out of range", left)
	assert.Assertf(right >= 0 && int(right) < len(t.nodes), "right child %d out of range", right)
	index := nodeIndex(len(t.nodes))
	weight := saturatingAdd(t.nodes[left].weight, t.nodes[right].weight)
	t.nodes = append(t.nodes, node{weight: weight, left: left, right: right})
	return index
}

// Len returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) Len() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the total number of symbol
// occurrences the tree was built from.  Trees parsed from a descriptor
// have weight 0.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Depth returns the depth of the leaf for symbol.  A tree consisting of a
// single leaf has depth 0.
func (t *Tree) Depth(symbol Symbol) (depth int, found bool) {
	t.walk(func(n *node, path Code) {
		if n.isLeaf() && n.symbol == symbol {
			depth, found = int(path.Size), true
		}
	})
	return depth, found
}

// WeightedPathLength returns the sum of weight(leaf) × depth(leaf) over all
// leaves.  This is the quantity that BuildTree minimizes.
func (t *Tree) WeightedPathLength() uint64 {
	var sum uint64
	t.walk(func(n *node, path Code) {
		if n.isLeaf() {
			sum = saturatingAdd(sum, n.weight*uint64(path.Size))
		}
	})
	return sum
}

// Isomorphic returns true iff t and u have the same shape and the same
// symbol at each leaf.  Weights are not compared.
func (t *Tree) Isomorphic(u *Tree) bool {
	if len(t.nodes) != len(u.nodes) {
		return false
	}

	type pair struct {
		a nodeIndex
		b nodeIndex
	}

	stack := make([]pair, 0, log2uint32(uint32(len(t.nodes))))
	stack = append(stack, pair{t.root, u.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		na, nb := &t.nodes[top.a], &u.nodes[top.b]
		if na.isLeaf() != nb.isLeaf() {
			return false
		}
		if na.isLeaf() {
			if na.symbol != nb.symbol {
				return false
			}
			continue
		}
		stack = append(stack, pair{na.right, nb.right}, pair{na.left, nb.left})
	}
	return true
}

// walk visits every node in pre-order (node, left subtree, right subtree),
// passing each node together with the path from the root to it: 0 for
// each left descent, 1 for each right descent.
//
func (t *Tree) walk(visit func(n *node, path Code)) {
	type stackItem struct {
		index nodeIndex
		path  Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[top.index]
		visit(n, top.path)
		if n.isLeaf() {
			continue
		}

		assert.Assertf(n.right != noNode, "internal node %d has only one child", top.index)

		// Push right first so that left is visited first.
		stack = append(stack,
			stackItem{index: n.right, path: top.path.Append(1)},
			stackItem{index: n.left, path: top.path.Append(0)})
	}
}

// type weightHeap {{{

type weightHeap struct {
	tree *Tree
	list []nodeIndex
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeIndex))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
