// stub.go implements the "recruit stub" command serving a local webhook.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/stubhook"
)

var (
	stubAddr     string
	stubFailWith string
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve a local stand-in for the spreadsheet webhook",
	Long: `Start an HTTP server that accepts form submissions the way the
spreadsheet script does and keeps them in memory. Point the form at it with:

  RECRUIT_WEBHOOK_URL=http://127.0.0.1:8787/ recruit

Use --fail to make every submission report an error.`,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", "", "listen address (default stub.addr from config)")
	stubCmd.Flags().StringVar(&stubFailWith, "fail", "", "reject submissions with this error message")
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := stubAddr
	if addr == "" {
		addr = cfg.Stub.Addr
	}

	logger, closeLog, err := log.New(cfg.Log, log.Options{Console: cmd.ErrOrStderr(), Debug: debug})
	if err != nil {
		return err
	}
	defer closeLog()

	server := stubhook.New(logger)
	server.FailWith(stubFailWith)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(addr)
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Stub webhook running at http://%s/\nPress Ctrl+C to stop\n", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("stub shutdown", zap.Error(err))
	}
	logger.Info("stub stopped", zap.Int("submissions", len(server.Submissions())))
	return nil
}
