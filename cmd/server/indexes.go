package main

import (
	"alcyxob/workout-sessions/internal/repository/mongo"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the Mongo indexes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return fmt.Errorf("connect to mongo: %w", err)
		}
		defer func() {
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Errorf("disconnect mongo: %s", err)
			}
		}()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, dbClient.Database(cfg.Database.Name)); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}

		log.Infof("indexes ensured on database %s", cfg.Database.Name)
		return nil
	},
}
