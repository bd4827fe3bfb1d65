// Command htmlpath evaluates an XPath expression against an HTML document
// and prints one serialized result per line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/htmlpath/htmlpath"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "htmlpath [expression]",
	Short: "Query HTML documents with HtmlCleaner-style XPath",
	Long: `htmlpath cleans an HTML document into a well-formed tree, evaluates
an XPath expression against it and prints one result per line. Element
results are printed as markup; attribute values, text, numbers and booleans
are printed as plain strings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if inputPath != "" && inputPath != "-" {
			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		results, err := htmlpath.Query(in, args[0])
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "HTML file to read (default: stdin)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
