package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-mutation/internal/colortable"
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the active mutation color scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := loadColorTable()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range tbl.Keys() {
				fmt.Fprintf(tw, "%s\t%s\n", k, colortable.Hex(tbl.Lookup(k)))
			}
			return tw.Flush()
		},
	}
}

// loadColorTable returns the default scheme with configured overrides applied.
func loadColorTable() *colortable.Table {
	tbl := colortable.NewDefault()
	n := colortable.LoadConfig(viper.GetViper(), tbl, logger)
	logger.Debug("loaded color overrides", zap.Int("count", n))
	return tbl
}
