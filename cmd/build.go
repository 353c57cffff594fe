package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"master-reference/core/config"
	"master-reference/core/database"
	"master-reference/core/logger"
	"master-reference/core/storage"
	"master-reference/feature/reference"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the build command
	sircaPath   string
	secRefPath  string
	masterPath  string
	outputPath  string
	printJSON   bool
	dryRunBuild bool
)

// buildCmd merges the three reference sources into the master reference.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the master company reference",
	Long: `Build the master company reference from three sources.

Every SIRCA row is joined to the security reference on (MS_CompanyID, MS_SecurityID),
then to the master company data on ISIN, falling back to the ticker symbol.

Locations are local paths, s3://bucket/key objects or db://table tables.

Examples:
  # Build from the default files in the current directory
  master-reference build

  # Read the master company data from the database and upload the result
  master-reference build --master db://MasterCompany --out s3://reference/master_company_reference.csv

  # Merge and report without writing
  master-reference build --dry-run --json`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&sircaPath, "sirca", "", "SIRCA names location (default from REFERENCE_SIRCA)")
	buildCmd.Flags().StringVar(&secRefPath, "secref", "", "Security reference location (default from REFERENCE_SECREF)")
	buildCmd.Flags().StringVar(&masterPath, "master", "", "Master company location (default from REFERENCE_MASTER)")
	buildCmd.Flags().StringVar(&outputPath, "out", "", "Output location (default from REFERENCE_OUTPUT)")
	buildCmd.Flags().BoolVar(&printJSON, "json", false, "Print the summary as JSON")
	buildCmd.Flags().BoolVar(&dryRunBuild, "dry-run", false, "Merge and report without writing the output")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(&cfg.Reference)

	// Initialize logger
	base, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer base.Sync()
	l := logger.WithRunID(base, uuid.NewString())

	l.Info("Building master company reference",
		zap.String("sirca", cfg.Reference.Sirca),
		zap.String("secref", cfg.Reference.SecRef),
		zap.String("master", cfg.Reference.Master),
		zap.String("output", cfg.Reference.Output),
	)

	svc, err := NewReferenceService(cfg, l)
	if err != nil {
		return err
	}

	result, err := svc.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to build master reference: %w", err)
	}

	summary := reference.Summarize(result)
	printSummary(l, summary)

	if printJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if dryRunBuild {
		l.Info("Dry-run mode: output was not written.")
		return nil
	}

	if err := svc.Write(ctx, result); err != nil {
		return fmt.Errorf("failed to write master reference: %w", err)
	}

	l.Info("Done", zap.String("output", cfg.Reference.Output))
	return nil
}

// applyFlags overrides configured locations with explicitly set flags.
func applyFlags(cfg *reference.Config) {
	if sircaPath != "" {
		cfg.Sirca = sircaPath
	}
	if secRefPath != "" {
		cfg.SecRef = secRefPath
	}
	if masterPath != "" {
		cfg.Master = masterPath
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
}

// NewReferenceService creates the reference service, connecting to object storage
// and the database only when a configured location needs them.
func NewReferenceService(cfg *config.Config, l *zap.Logger) (*reference.Service, error) {
	probe, err := reference.NewService(cfg.Reference, nil, nil, l)
	if err != nil {
		return nil, err
	}
	locations, err := probe.Locations()
	if err != nil {
		return nil, err
	}

	var client storage.Client
	if storage.NeedsClient(locations...) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	var db *gorm.DB
	for _, loc := range locations {
		if loc.Kind != storage.KindTable {
			continue
		}
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		break
	}

	return reference.NewService(cfg.Reference, client, db, l)
}

// printSummary logs the build statistics.
func printSummary(l *zap.Logger, s reference.Summary) {
	l.Info("Master reference summary",
		zap.Int("total_rows", s.TotalRows),
		zap.Int("total_columns", s.TotalColumns),
		zap.Int("unique_gcodes", s.UniqueGcodes),
	)

	l.Info("Match coverage",
		zap.Int("with_security_reference", s.WithShareClass),
		zap.String("with_security_reference_pct", fmt.Sprintf("%.1f%%", s.Percent(s.WithShareClass))),
		zap.Int("with_master_company", s.WithCompany),
		zap.String("with_master_company_pct", fmt.Sprintf("%.1f%%", s.Percent(s.WithCompany))),
		zap.Int("with_isin", s.WithISIN),
		zap.String("with_isin_pct", fmt.Sprintf("%.1f%%", s.Percent(s.WithISIN))),
		zap.Int("company_matches", s.CompanyMatches),
	)

	for _, c := range s.TradingStatus {
		l.Info("Trading status", zap.String("status", c.Label), zap.Int("count", c.Count))
	}
	for _, c := range s.ActiveOrDelisted {
		l.Info("Active/Delisted", zap.String("status", c.Label), zap.Int("count", c.Count))
	}
}
