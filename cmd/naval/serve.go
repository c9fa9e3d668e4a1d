package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-naval/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoHistory   bool
	flagEnvFile     string
)

// Environment overrides for serve, applied when the matching flag is unset.
var serveEnv = map[string]string{
	"ssh":      "NAVAL_SSH_ADDR",
	"host-key": "NAVAL_HOST_KEY",
	"db":       "NAVAL_DB",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the viewer over SSH",
	Long: `Start an SSH server that shows the scenario to every visitor.

Each SSH connection runs the scenario afresh and gets its own viewer.
Runs are recorded in the history database unless --no-history is set.

Settings can also come from NAVAL_SSH_ADDR, NAVAL_HOST_KEY and NAVAL_DB,
read from the environment or from --env-file. Flags take precedence.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.naval/host_key

Examples:
  naval serve                           # Listen on :23235 with auto-generated key
  naval serve --ssh :2222               # Listen on port 2222
  naval serve --host-key ./my_host_key  # Use specific host key
  naval serve --autoplay 3s             # Advance steps automatically

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagAutoplay, "autoplay", 0, "Advance automatically at this interval (0 = manual)")
	serveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record sessions")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional file of NAVAL_* settings")
}

// applyEnv loads flagEnvFile if present and copies NAVAL_* variables into
// flags the user did not set.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %s: %w", flagEnvFile, err)
	}
	for name, env := range serveEnv {
		f := cmd.Flag(name)
		v, ok := os.LookupEnv(env)
		if f == nil || f.Changed || !ok {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := applyEnv(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sc := loadScenario()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.Scenario = sc
	cfg.Strict = !flagLenient
	cfg.Interval = flagAutoplay
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagNoHistory {
		cfg.DBPath = ""
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "naval-ssh",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	port := cfg.Address
	if i := strings.LastIndex(port, ":"); i >= 0 {
		port = port[i+1:]
	}
	fmt.Printf("Starting naval SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
