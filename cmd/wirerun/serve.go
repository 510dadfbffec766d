package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Serve starts an SSH server so others can play over the network:

  ssh -p 23234 localhost

Each connection gets its own session with the full menu flow, and the
SSH username goes on the shared leaderboard.

Examples:
  wirerun serve
  wirerun serve --ssh :2222
  wirerun serve --ssh :2222 --host-key ./host_key --idle-timeout 1h`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.wirerun/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddress
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.DBPath = dbPath(cfg)
	serverCfg.IdleTimeout = flagIdleTimeout
	serverCfg.Runtime = runtimeConfig(cfg)

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
