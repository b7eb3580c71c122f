package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertInput  string
	convertOutput string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert NDJSON place documents to a GeoJSON FeatureCollection",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if convertInput != "" && convertInput != "-" {
			f, err := os.Open(convertInput)
			if err != nil {
				return eris.Wrapf(err, "convert: open %s", convertInput)
			}
			defer f.Close()
			in = f
		}

		docs, err := readDocuments(in)
		if err != nil {
			return err
		}

		assembler, err := newAssembler(cfg)
		if err != nil {
			return err
		}

		fc := assembler.Assemble(cmd.Context(), docs)
		zap.L().Info("convert: assembled feature collection",
			zap.Int("documents", len(docs)),
			zap.Int("features", len(fc.Features)),
		)

		return writeCollection(fc, convertOutput, convertPretty)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "-", "NDJSON input file (- for stdin)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "-", "output file (- for stdout)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "indent JSON output")
	rootCmd.AddCommand(convertCmd)
}
