package cli

import (
	"ia-admin/internal/config"
	"ia-admin/internal/database"

	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the lookup catalog, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := bootstrap()
			if err != nil {
				return err
			}

			level, _ := config.ParseLevel(cfg.LogLevel)
			if err := database.Init(cfg.DBDriver, cfg.DBDSN, cfg.CatalogFile, level, lg); err != nil {
				return err
			}

			lg.Info("migration finished")
			return nil
		},
	}
}
