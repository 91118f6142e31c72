package hufftree

import (
	"bytes"
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hufftree")

// Separator is the byte between the tree descriptor and the payload.
const Separator = '\n'

// Options controls Build.  The zero value is valid.
type Options struct {
	// Format selects the tree descriptor format.
	Format DescriptorFormat

	// Shards is the number of goroutines used to count frequencies.
	// Values below 2 count serially.
	Shards int
}

// Artifact is the result of encoding one input: the tree built from the
// input, its code table, the serialized tree, and the encoded payload.
type Artifact struct {
	Tree       *Tree
	Table      *CodeTable
	Format     DescriptorFormat
	Descriptor []byte

	// Payload holds one ASCII '0' or '1' per code bit.
	Payload []byte
}

// Build counts the byte frequencies of data, builds their Huffman tree,
// and encodes data with it.  Build fails with ErrEmptyAlphabet if data is
// empty.
//
func Build(data []byte, opts Options) (*Artifact, error) {
	freqs := CountFrequenciesParallel(data, opts.Shards)
	log.Debugf("counted %d distinct symbols in %d bytes", len(freqs), len(data))

	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	table := NewCodeTable(tree)
	log.Debugf("built tree: %d leaves, code sizes %d .. %d bits, weighted path length %d",
		tree.Len(), table.MinSize(), table.MaxSize(), tree.WeightedPathLength())

	payload, err := table.Encode(data)
	if err != nil {
		return nil, err
	}

	a := &Artifact{
		Tree:       tree,
		Table:      table,
		Format:     opts.Format,
		Descriptor: tree.AppendDescriptor(nil, opts.Format),
		Payload:    payload,
	}
	log.Debugf("%s descriptor is %d bytes, payload is %d bits", a.Format, len(a.Descriptor), len(a.Payload))
	return a, nil
}

// Len returns the number of bytes WriteTo will write.
func (a *Artifact) Len() int {
	return len(a.Descriptor) + 1 + len(a.Payload)
}

// WriteTo writes the descriptor, Separator, and payload to w.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(a.Len())
	buf.Write(a.Descriptor)
	buf.WriteByte(Separator)
	buf.Write(a.Payload)
	return buf.WriteTo(w)
}

var _ io.WriterTo = (*Artifact)(nil)

// ReadArtifact splits an artifact written by WriteTo back into its tree and
// payload.  The payload is returned as-is, without validation.
func ReadArtifact(data []byte, format DescriptorFormat) (*Tree, []byte, error) {
	tree, rest, err := ParseDescriptor(data, format)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 || rest[0] != Separator {
		return nil, nil, malformedf("descriptor is not followed by %q", Separator)
	}
	return tree, rest[1:], nil
}
