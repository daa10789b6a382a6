package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naptar/src-server/route"
	"naptar/src-server/scheduler"

	"github.com/spf13/cobra"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar API, the feeds and the web client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			as := c.as

			if _, err := scheduler.Export(as); err != nil {
				return err
			}

			server := &http.Server{
				Addr:              ":" + as.Config.GetPort(),
				Handler:           route.NewHandler(as),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("cannot start HTTP server", "error", err)
					as.AppCloseSignalChan <- syscall.SIGTERM
				}
			}()
			slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())

			signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			<-as.AppCloseSignalChan
			slog.Info("gracefully shutting down...")
			as.GracefulShutdown()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
	cmd.Flags().String("port", "", "HTTP port (env PORT)")
	cmd.Flags().String("export-dir", "", "also export feeds to this directory on a schedule (env EXPORT_DIR)")
	c.bind(cmd, "PORT", "port")
	c.bind(cmd, "EXPORT_DIR", "export-dir")
	return cmd
}
