package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ripple/pkg/cache"
	"github.com/matzehuels/ripple/pkg/server"
	"github.com/matzehuels/ripple/pkg/session"
)

// serveCommand creates the serve command for the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout sessions over HTTP",
		Long: `Serve layout sessions over HTTP.

Each session owns one canvas: clients create a session, PUT successive topic
lists to it and read back snapshots whose positions stay stable between
updates. Idle sessions expire after server.session_ttl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config, :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store := session.NewMemoryStore(session.Config{
		TTL:         cfg.Server.SessionTTL,
		MaxSessions: cfg.Server.MaxSessions,
		Engine:      cfg.Engine(),
		Logger:      c.Logger,
	})
	srv := server.New(store, c.Logger, server.Options{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Viewport:     cfg.Viewport,
		PreviewCache: cache.NewMemoryCache(cfg.Server.PreviewCache),
		PreviewTTL:   cfg.Server.PreviewTTL,
	})

	printInfo("Listening on %s", StyleValue.Render(addr))
	printKeyValue("viewport", fmt.Sprintf("%gx%g", cfg.Viewport.Width, cfg.Viewport.Height))
	printKeyValue("session ttl", cfg.Server.SessionTTL.String())
	printNextStep("Try", "curl -X POST http://localhost"+portOf(addr)+"/sessions")
	return srv.ListenAndServe(ctx, addr)
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ""
}
