// Package hufftree builds Huffman trees for byte alphabets and serializes
// them, together with the data they encode, into a single artifact.
//
// The pipeline is:
//
//     CountFrequencies -> BuildTree -> NewCodeTable -> CodeTable.Encode
//                                  \-> Tree.AppendDescriptor
//
// Build runs the whole pipeline and returns an Artifact, whose WriteTo
// method emits the tree descriptor, a newline, and the encoded payload as
// ASCII '0' and '1' characters.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
