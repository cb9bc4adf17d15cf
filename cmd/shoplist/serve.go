package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/modules/shopping"
	"github.com/dmitrymomot/shoplist/modules/shopping/views"
	"github.com/dmitrymomot/shoplist/pkg/clientip"
	"github.com/dmitrymomot/shoplist/pkg/environment"
	"github.com/dmitrymomot/shoplist/pkg/httpserver"
	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/requestid"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/visitor"
)

//go:embed assets
var assets embed.FS

// errorMessages maps handler.HTTPError keys to the text shown to users.
var errorMessages = map[string]string{
	"not_found":              "Item não encontrado.",
	"bad_request":            "Requisição inválida.",
	"method_not_allowed":     "Operação não permitida.",
	"unsupported_media_type": "Formato de envio não suportado.",
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the shopping list over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log.With(logger.Component("httpserver"))),
				httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
					log.Info("server started", logger.Event("server_started"), slog.String("addr", addr.String()))
				}),
				httpserver.WithStopHook(func(log *slog.Logger, addr net.Addr) {
					log.Info("server stopped", logger.Event("server_stopped"), slog.String("addr", addr.String()))
				}),
			)
			return srv.Run(cmd.Context(), newRouter(cfg, log))
		},
	}
}

func newRouter(cfg AppConfig, log *slog.Logger) http.Handler {
	store := shoplist.NewStore(cfg.MaxLists, shoplist.WithEvictHook(func(visitorID string, l *shoplist.List) {
		log.Info("shopping list evicted",
			logger.Event("list_evicted"),
			logger.VisitorID(visitorID),
			slog.Int("items", l.Len()),
		)
	}))

	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
		Messages:   errorMessages,
	})
	svc := shopping.NewService(shopping.Config{
		Title:          cfg.Title,
		DatastarScript: cfg.DatastarScript,
	}, store, views.Default(), log, errHandler)

	static, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	resolver := clientip.NewResolver()
	if cfg.TrustProxy {
		resolver = clientip.NewResolver(clientip.DefaultHeaders...)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		resolver.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(static)))
	r.Group(func(r chi.Router) {
		r.Use(visitor.Middleware(visitor.WithSecure(cfg.CookieSecure)))
		r.Mount("/", svc.Handle())
	})
	return r
}
