package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skillswap-app/skillswap/internal/api"
	"github.com/skillswap-app/skillswap/internal/logger"
)

const defaultListen = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the skillswap JSON API",
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default is :8080)")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		return err
	}

	listen := strings.TrimSpace(viper.GetString("listen"))
	if listen == "" {
		listen = strings.TrimSpace(config.Listen)
	}
	if listen == "" {
		listen = defaultListen
	}

	sess := newSession(ctx, config, zlog)

	srv := &http.Server{
		Addr:              listen,
		Handler:           api.NewHandler(sess, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zlog.Info("starting the skillswap api",
		zap.String("version", version),
		zap.String("listen", listen),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		zlog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
