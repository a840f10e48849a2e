package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/infrastructure/config"
)

var (
	configForce        bool
	configSchemaOutput string
	configDryRun       bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where floatpane keeps its files, write or migrate the config file and generate its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, storage and log locations",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write a config file holding every setting at its default value.

An existing file is left alone unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the config file",
	Long: `Generate the JSON schema of the config file for editor completion.

Without --output the schema is printed to stdout.`,
	RunE: runConfigSchema,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing settings to the config file",
	Long: `Compare the config file with the current defaults.

Settings missing from the file are added with their default value, unused
ones are dropped and existing values are kept. Use --dry-run to only show
the diff.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd, configMigrateCmd)
	configMigrateCmd.Flags().BoolVarP(&configDryRun, "dry-run", "n", false, "show the changes without writing them")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	logDir, err := app.LogDir()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Print(renderer.RenderPaths([]styles.PathEntry{
		{Icon: styles.IconConfig, Label: "Config", Path: app.Manager.GetConfigFile()},
		{Icon: styles.IconDatabase, Label: string(app.Config.Storage.Backend), Path: app.StoragePath},
		{Icon: styles.IconLogs, Label: "Logs", Path: logDir},
	}))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.Manager.GetConfigFile()
	err = config.WriteDefault(path, configForce)
	switch {
	case errors.Is(err, config.ErrConfigExists):
		fmt.Print(renderer.RenderExists(path))
		return nil
	case err != nil:
		return fmt.Errorf("write default config: %w", err)
	}
	fmt.Print(renderer.RenderWritten("default config", path))
	return nil
}

func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()
	migrator := config.NewMigrator(path)

	var changes []config.KeyChange
	if configDryRun {
		changes, err = migrator.DetectChanges()
	} else {
		changes, err = migrator.Migrate()
	}
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	fmt.Print(renderer.RenderDiff(path, config.FormatChanges(changes), configDryRun && len(changes) > 0))
	return nil
}

// runConfigSchema runs without an App so a broken config never blocks it.
func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaOutput == "" {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
		return err
	}
	fmt.Print(styles.NewConfigRenderer(styles.NewTheme()).RenderWritten("config schema", configSchemaOutput))
	return nil
}
