package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

var (
	encodeOutput string
	encodeFormat string
	encodeShards int
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a file with a Huffman tree built from its contents",
	Long:  "Encode a file with a Huffman tree built from its contents.  If no file is named, prompt for one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := hufftree.ParseDescriptorFormat(encodeFormat)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = promptFilename(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}

		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("unable to open file: %w", err)
		}

		artifact, err := hufftree.Build(data, hufftree.Options{Format: format, Shards: encodeShards})
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}

		if err := writeArtifact(encodeOutput, artifact); err != nil {
			return fmt.Errorf("write %s: %w", encodeOutput, err)
		}

		log.Infof("%s: %d bytes, %d symbols, %d payload bits -> %s",
			name, len(data), artifact.Tree.Len(), len(artifact.Payload), encodeOutput)
		fmt.Fprintln(cmd.OutOrStdout(), "Encoded text and Huffman tree written to file.")
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "encoded.txt", "Artifact file to write")
	encodeCmd.Flags().StringVarP(&encodeFormat, "format", "f", hufftree.FormatSplit.String(), "Tree descriptor format: split|interleaved")
	encodeCmd.Flags().IntVarP(&encodeShards, "shards", "s", 0, "Number of frequency counting workers (0 = serial)")
}

func promptFilename(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the filename: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read filename: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("no filename given")
	}
	return name, nil
}

func writeArtifact(name string, artifact *hufftree.Artifact) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	_, err = artifact.WriteTo(f)
	return err
}
