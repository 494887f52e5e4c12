// Command backup exports and imports the profile store as JSON, for
// moving game data between devices or database backends.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scrambledstates/internal/config"
	"scrambledstates/internal/database"
	"scrambledstates/internal/service"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	backup := service.NewBackupService(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backup, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backup, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backup *service.BackupService, outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("failed to create output directory")
		}
	}

	if err := backup.Export(outputPath); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	info, _ := os.Stat(outputPath)
	log.Info().Str("file", outputPath).Int64("bytes", info.Size()).Msg("export complete")
}

func handleImport(backup *service.BackupService, inputPath string) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatal().Str("file", inputPath).Msg("input file does not exist")
	}

	if err := backup.Import(inputPath); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Str("file", inputPath).Msg("import complete")
}

func printUsage() {
	fmt.Println("Scrambled States Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export profiles to a JSON file")
	fmt.Println("  backup import [options]    Import profiles from a JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Profiles that already exist (by username) are skipped on import.")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./scrambledstates.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
