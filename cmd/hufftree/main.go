// Command hufftree encodes files with a Huffman code built from their
// contents, and inspects the resulting artifacts.
package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

const progName = "hufftree"

var log = logging.MustGetLogger("hufftree/cmd")

var debug bool

var rootCmd = &cobra.Command{
	Use:   progName,
	Short: "Huffman tree encoder",
	Long:  "hufftree builds a Huffman tree from a file's bytes and writes the tree and the encoded file as one artifact.",

	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug && leveledLogBackend != nil {
			leveledLogBackend.SetLevel(logging.DEBUG, "")
		}
	},
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-14s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every pipeline stage to standard error")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	startLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
