package main

import (
	"fmt"

	"hostel-directory-backend/internal/database"
	"hostel-directory-backend/internal/repository"
	"hostel-directory-backend/internal/seed"
	"hostel-directory-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and sample entities from a YAML file",
	Long: `Load categories, options and sample hostels and projects from a YAML file.

Existing categories keep their options and gain any missing ones. Hostels and
projects are matched by name and only created when absent, so seeding twice is safe.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file (default: SEED_FILE)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := seedFile
	if path == "" {
		path = cfg.SeedFile
	}
	file, err := seed.Load(path)
	if err != nil {
		return err
	}

	db, err := openDatabase(quietDB())
	if err != nil {
		return err
	}
	sqlxDB, err := database.NewSQLX(db)
	if err != nil {
		return err
	}

	tags := repository.NewTagQueryRepository(sqlxDB)
	validator := service.NewValidator()
	seeder := seed.NewSeeder(
		service.NewCategoryService(db, validator),
		service.NewHostelService(db, tags, validator, cfg.RecentCommentsInList, cfg.RecentCommentsInDetail),
		service.NewProjectService(db, tags, validator),
	)

	summary, err := seeder.Run(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	for _, failed := range summary.Failed {
		logrus.Warnf("Skipped %s", failed)
	}
	logrus.Infof("Seeded %s", path)
	return nil
}
