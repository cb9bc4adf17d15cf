// Package httpserver runs an http.Handler until its context is cancelled or
// the process receives SIGINT/SIGTERM, then shuts down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
//			log.Info("listening", slog.String("addr", addr.String()))
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// The listener is bound before start hooks run, so hooks see the real
// address even when the configured one uses port 0.
package httpserver
