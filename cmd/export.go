package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/store"
)

var (
	exportSource string
	exportLayer  string
	exportLimit  int
	exportOutput string
	exportPretty bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored documents as a GeoJSON FeatureCollection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		docs, err := st.Fetch(ctx, store.Filter{
			Source: exportSource,
			Layer:  exportLayer,
			Limit:  exportLimit,
		})
		if err != nil {
			return err
		}

		assembler, err := newAssembler(cfg)
		if err != nil {
			return err
		}

		fc := assembler.Assemble(ctx, docs)
		zap.L().Info("export: assembled feature collection",
			zap.String("source", exportSource),
			zap.String("layer", exportLayer),
			zap.Int("documents", len(docs)),
			zap.Int("features", len(fc.Features)),
		)

		return writeCollection(fc, exportOutput, exportPretty)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSource, "source", "", "filter by document source")
	exportCmd.Flags().StringVar(&exportLayer, "layer", "", "filter by document layer")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "maximum documents to export (0 = all)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file (- for stdout)")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "indent JSON output")
	rootCmd.AddCommand(exportCmd)
}
