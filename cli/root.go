package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stsysd/payback/config"
	"github.com/stsysd/payback/db"
	"github.com/stsysd/payback/logging"
	"github.com/stsysd/payback/store"
)

// session は1回の実行で共有される依存関係です。
type session struct {
	configPath string
	dataDir    string
	verbose    bool

	app    *App
	logger *zap.Logger
	store  store.PersonStore
}

// open は設定を読み込み、ロガーとストアを初期化します。
func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	if s.dataDir != "" {
		cfg.DataDir = s.dataDir
	}
	if s.verbose {
		cfg.Logging.Level = "debug"
	}

	base, err := logging.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		return err
	}
	s.logger = logging.WithRunID(base)

	st, err := store.NewSQLiteStore(cfg.DataDir, db.Migrator(s.logger))
	if err != nil {
		return err
	}
	s.store = st

	s.app, err = Load(cmd.Context(), st, s.logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	s.logger.Debug("payback started",
		zap.String("data_dir", cfg.DataDir),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// close はストアを閉じ、ロガーをフラッシュします。
func (s *session) close() error {
	var err error
	if s.store != nil {
		err = s.store.Close()
		s.store = nil
	}
	if s.logger != nil {
		// stderrへのSyncは環境によって失敗するため無視する
		_ = s.logger.Sync()
	}
	return err
}

func (s *session) currentApp() *App {
	return s.app
}

// newRootCommand はpaybackのルートコマンドを生成します。
func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "payback",
		Short: "Manage employee records from the command line",
		Long: `payback keeps a small address book of employees in a local SQLite database.
Use the subcommands to add, edit, list, find and delete employees,
or start an interactive session with "payback shell".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "path to config file (default $"+config.EnvConfigFile+")")
	flags.StringVar(&s.dataDir, "data-dir", "", "directory holding "+store.DBFileName)
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging")

	addCommands(root, s.currentApp)
	root.AddCommand(newShellCommand(s.currentApp))
	return root
}

// Execute はargsでルートコマンドを実行し、終了時にストアを閉じます。
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	s := &session{}
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
