// Package cmd implements the skymatch command line interface: a thin
// wrapper that loads two coordinate lists, runs the cross-match, and
// prints the matched index pairs with their separations.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/almagest-io/skymatch/pkg/logging"
	"github.com/almagest-io/skymatch/pkg/match"
)

var (
	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "skymatch CATALOG_A CATALOG_B",
	Short: "Cross-match two astronomical source catalogs",
	Long: `Skymatch correlates two lists of sky positions, identifying for each
source in catalog A the best-matching source in catalog B within an
angular search radius.

Each catalog file holds one source per line: right ascension and
declination in degrees, whitespace separated. Blank lines and lines
starting with '#' are skipped. Matched pairs are printed to stdout as
"indexA indexB separation_arcsec", one per line, ordered by indexA.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Msg("skymatch failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Float64("radius", 1.0, "search radius in arcseconds")
	rootCmd.Flags().String("policy", "mutual-nearest",
		"match policy: greedy-nearest, nearest-unique, mutual-nearest, offset-corrected")
	rootCmd.Flags().Int("workers", 1, "goroutines scanning catalog A")
	rootCmd.Flags().Bool("no-index", false, "disable the spatial prefilter (all-pairs scan)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "log errors only")
	rootCmd.PersistentFlags().String("log-format", "auto", "log format: auto, console, json")

	for _, flag := range []string{"radius", "policy", "workers", "no-index"} {
		if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
	for _, flag := range []string{"verbose", "quiet", "log-format"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig wires environment variables into viper. Flags always win;
// SKYMATCH_RADIUS, SKYMATCH_POLICY etc. fill the gaps.
func initConfig() {
	// .env files load first so viper's env binding can see them
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}

	viper.SetEnvPrefix("SKYMATCH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

func runMatch(cmd *cobra.Command, args []string) error {
	configureLogging()
	logger := logging.Default()

	policy, err := match.ParsePolicy(viper.GetString("policy"))
	if err != nil {
		return err
	}

	catalogA, err := readCatalog(args[0])
	if err != nil {
		return err
	}
	catalogB, err := readCatalog(args[1])
	if err != nil {
		return err
	}

	logger.Debug().
		Int("catalog_a", catalogA.Len()).
		Int("catalog_b", catalogB.Len()).
		Str("policy", policy.String()).
		Msg("catalogs loaded")

	opts := []match.Option{match.WithLogger(logger)}
	if workers := viper.GetInt("workers"); workers > 1 {
		opts = append(opts, match.WithWorkers(workers))
	}
	if viper.GetBool("no-index") {
		opts = append(opts, match.WithoutIndex())
	}

	result, err := match.Match(catalogA, catalogB, viper.GetFloat64("radius"), policy, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range result.Pairs {
		fmt.Fprintf(out, "%d %d %.6f\n", p.A, p.B, p.Separation)
	}
	return nil
}

// configureLogging applies the verbosity flags to the default logger.
func configureLogging() {
	cfg := logging.DefaultConfig()
	cfg.Format = viper.GetString("log-format")
	switch {
	case viper.GetBool("quiet"):
		cfg.Level = "error"
	case viper.GetBool("verbose"):
		cfg.Level = "debug"
	}
	logging.Configure(cfg)
}
