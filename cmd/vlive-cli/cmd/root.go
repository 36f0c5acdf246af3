package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"vlivego/lib/configutil"
	"vlivego/lib/osutil"
	"vlivego/lib/restyutil"
	"vlivego/lib/vlive"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	sessionPath string
	verbose     bool
	debugDir    string
)

var client *vlive.Client

var rootCmd = &cobra.Command{
	Use:   "vlive-cli",
	Short: "vlive-cli fetches posts, comments, channels and upcoming listings from VLIVE.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		var cfg vlive.ClientConfig
		if configPath != "" {
			loaded, err := vlive.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		} else {
			loaded, err := configutil.ReadRecursively[vlive.ClientConfig]("vlive.json5")
			if err == nil {
				cfg = loaded
			} else if !os.IsNotExist(err) {
				return err
			}
		}

		opts := vlive.ClientOptions{Config: cfg}
		if debugDir != "" {
			output, err := restyutil.NewFilesystemOutput(debugDir)
			if err != nil {
				return err
			}
			opts.DebugOutput = output
		}

		var err error
		client, err = vlive.NewClient(opts)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a json5 client config file")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "", "path to a dumped session file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&debugDir, "debug-http", "", "dump raw http exchanges into this directory")
}

// loadSession reads the session file given by --session, nil when unset.
func loadSession() (*vlive.Session, error) {
	if sessionPath == "" {
		return nil, nil
	}
	f, err := os.Open(sessionPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return client.LoadSession(f)
}

func Execute() {
	if err := rootCmd.ExecuteContext(osutil.SignalContext()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
