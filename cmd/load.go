package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/shape"
)

var (
	loadShapefile string
	loadSource    string
	loadLayer     string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Seed the document store from a point shapefile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if loadShapefile == "" {
			return eris.New("load: --shapefile is required")
		}

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		bodies, err := shape.Documents(loadShapefile, loadSource, loadLayer)
		if err != nil {
			return err
		}

		for _, body := range bodies {
			if err := st.Insert(ctx, loadSource, loadLayer, body); err != nil {
				return err
			}
		}

		zap.L().Info("load: stored shapefile documents",
			zap.String("shapefile", loadShapefile),
			zap.String("source", loadSource),
			zap.String("layer", loadLayer),
			zap.Int("documents", len(bodies)),
		)
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadShapefile, "shapefile", "", "path to the .shp file")
	loadCmd.Flags().StringVar(&loadSource, "source", "shapefile", "source attributed to loaded documents")
	loadCmd.Flags().StringVar(&loadLayer, "layer", "venue", "layer attributed to loaded documents")
	rootCmd.AddCommand(loadCmd)
}
