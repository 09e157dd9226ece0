package command

import (
	"HealthCompanion/internal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewService(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		log.Info().Msg("Schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default health tips",
	Long:  "Inserts the bundled health tips. Tips that already exist are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewService(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.SeedHealthTips(cmd.Context())
		if err != nil {
			return err
		}
		log.Info().Int("inserted", n).Msg("Health tips seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
