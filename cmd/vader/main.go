package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/drankou/vader-sentiment/internal/config"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/drankou/vader-sentiment/vader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// app carries the resolved configuration to subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "vader",
		Short: "VADER: rule-based sentiment scoring for social media text",
		Long: `Vader scores the sentiment of short informal texts using a valence
lexicon and grammatical heuristics: negation, boosters, capitalization,
punctuation emphasis and contrastive "but".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.vader.yaml)")
	pf.String("lexicon", "", "path to a word<TAB>valence lexicon (default: embedded)")
	pf.String("emoji-lexicon", "", "path to an emoji<TAB>description lexicon (default: embedded)")
	pf.String("format", "text", "output format: text, json, or yaml")
	pf.Int("workers", 0, "concurrent scorers (default GOMAXPROCS)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"lexicon":       "lexicon",
		"emoji_lexicon": "emoji-lexicon",
		"format":        "format",
		"workers":       "workers",
		"log_level":     "log-level",
	} {
		// flag names are static, Lookup cannot miss
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newSchemaCmd())

	return root
}

func (a *app) load() error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.SetLevel(cfg.Level())

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	return nil
}

// newAnalyzer builds an analyzer from the lexicon paths in cfg.
func newAnalyzer(cfg *config.Config) (*vader.SentimentIntensityAnalyzer, error) {
	opts := []vader.Option{vader.WithLogger(logger)}
	if cfg.Lexicon != "" {
		opts = append(opts, vader.WithLexiconFile(cfg.Lexicon))
	}
	if cfg.EmojiLexicon != "" {
		opts = append(opts, vader.WithEmojiLexiconFile(cfg.EmojiLexicon))
	}

	sia, err := vader.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("building analyzer: %w", err)
	}
	logger.Debug("analyzer ready", "words", len(sia.Lexicon), "emoji", len(sia.EmojiLexicon))
	return sia, nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for JSON output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
