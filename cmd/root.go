package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/config"
	"github.com/theirongolddev/spendit/internal/kv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDB        string
	flagNoPersist bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:               "spendit",
	Short:             "Personal budget tracker",
	Long:              "Track starting cash, monthly savings and what you spend it on, and see how long until you break even.",
	PersistentPreRunE: setupEnv,
	RunE:              runSummary,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Budget store path (overrides config and "+config.EnvDBPath+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoPersist, "no-persist", false, "Keep everything in memory for this run")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
}

// setupEnv loads .env from the working directory and points the logger at stderr.
func setupEnv(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	log.SetFlags(0)
	log.SetPrefix("spendit: ")
	if flagQuiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
	return nil
}

// session is what every command works against: the loaded config, the open
// store and the tracker built on top of it.
type session struct {
	cfg       config.Config
	store     kv.Store
	storePath string
	tracker   *budget.Tracker
	closeFn   func() error
}

func (s *session) Close() {
	if s.closeFn == nil {
		return
	}
	if err := s.closeFn(); err != nil {
		log.Printf("closing store: %v", err)
	}
}

// openSession is the shared loading path used by all commands.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoPersist {
		mem := kv.NewMemory(nil)
		return &session{
			cfg:       cfg,
			store:     mem,
			storePath: "(in memory)",
			tracker:   budget.New(budget.NewKVRepository(mem)),
		}, nil
	}

	path := flagDB
	if path == "" {
		path = config.GetDBPath(cfg)
	}
	db, err := kv.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &session{
		cfg:       cfg,
		store:     db,
		storePath: path,
		tracker:   budget.New(budget.NewKVRepository(db)),
		closeFn:   db.Close,
	}, nil
}
