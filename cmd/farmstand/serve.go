package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryomx12/farmstand/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Open the stand to the network over SSH",
	Long: `Run an SSH server so anyone can walk up and play.

Every connection gets its own stand, starting at the title screen. Finished
runs are recorded under the SSH username, so the whole server shares one
set of records.

The host key comes from --host-key, or is auto-generated under
~/.farmstand/host_key on first start.

Examples:
  farmstand serve                  # listen on :23234
  farmstand serve --ssh :2222      # another port
  farmstand serve --db ./runs.db   # record runs elsewhere

Then, from anywhere that can reach the box:
  ssh -p 23234 yourname@host`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "address to listen on (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "host key file (auto-generated when empty)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.farmstand/farmstand.db", "runs database path")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "minutes before idle connections are dropped")
}

func runServe(_ *cobra.Command, _ []string) {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open the stand: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Farm stand open over SSH on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to close up")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "ssh server: %v\n", err)
		os.Exit(1)
	}
}
