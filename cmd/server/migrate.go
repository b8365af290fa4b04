package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize migrates unless told otherwise
		if _, err := openDatabase(quietDB()); err != nil {
			return err
		}
		logrus.Info("Database schema is up to date")
		return nil
	},
}
