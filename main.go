package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/eisachaudhary/portfolio/internal/config"
	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/logger"
	"github.com/eisachaudhary/portfolio/internal/site"
	"github.com/eisachaudhary/portfolio/internal/telemetry"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	cfg := config.New()

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Level:  cfg.GetLogLevel(),
				Format: cfg.GetLogFormat(),
				Debug:  debug,
			})
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context(), cfg, debug)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging and gin debug mode")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the portfolio over HTTP",
			RunE: func(c *cobra.Command, _ []string) error {
				return serve(c.Context(), cfg, debug)
			},
		},
		newExportCmd(cfg),
		newValidateCmd(cfg),
		newTUICmd(cfg),
	)
	return cmd
}

// loadSite reads content and templates the way every command needs them.
func loadSite(cfg *config.Config) (*site.Site, error) {
	p, err := content.Load(cfg.GetContentFile())
	if err != nil {
		return nil, err
	}
	return site.New(p, site.WithScrollThreshold(cfg.GetScrollThreshold())), nil
}

func serve(ctx context.Context, cfg *config.Config, debug bool) error {
	log := logger.L()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := loadSite(cfg)
	if err != nil {
		return err
	}
	tmpl, err := site.Templates(cfg.GetTemplatesDir())
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.GetOTLPEndpoint(), "portfolio")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing.shutdown", "err", err)
		}
	}()

	s := &server{
		site:      st,
		tmpl:      tmpl,
		log:       log,
		clock:     clock.RealClock{},
		typing:    typewriter.Config{TypingInterval: cfg.GetTypingInterval(), CursorInterval: cfg.GetCursorInterval()},
		mailer:    newSMTPMailer(cfg.GetSMTP(), log),
		limiter:   newClientLimiter(cfg.GetContactRate()),
		salt:      generateSalt(),
		staticDir: cfg.GetStaticDir(),
	}

	srv := &http.Server{
		Addr:              cfg.GetAddr(),
		Handler:           telemetry.Handler(newRouter(s), "portfolio"),
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end with ctx so open hero streams stop on shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server.listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server.shutdown")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}

// logStartupContent is used by validate to summarize what was loaded.
func logStartupContent(log *slog.Logger, p *content.Portfolio) {
	log.Info("content.loaded",
		"experiences", len(p.Experiences),
		"skill_categories", len(p.Skills),
		"projects", len(p.Projects),
	)
}
