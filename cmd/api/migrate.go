package main

import (
	"github.com/spf13/cobra"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/config"
	dbpkg "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/db"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/logger"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria/atualiza o schema do banco",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db, log); err != nil {
				return err
			}

			log.Info("migration finished")
			return nil
		},
	}
}
