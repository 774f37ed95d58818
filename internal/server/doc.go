// Package server provides the tracker's HTTP server.
//
//	┌──────────────────────────────────────────────┐
//	│ Middleware: middlewares.Logger,              │
//	│             ginzap.RecoveryWithZap           │
//	├──────────────────────────────────────────────┤
//	│ /health        liveness                      │
//	│ /metrics       prometheus                    │
//	│ /api/v1/...    handlers (via callback)       │
//	│ /*             statics + SPA fallback (prod) │
//	└──────────────────────────────────────────────┘
//
// In dev mode gin runs in debug mode and only the API is served. In prod mode
// gin runs in release mode and, when StaticsFolder is set, the folder is served
// with every non-API path falling back to index.html.
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
//	})
//	go srv.Start(ctx)
//	...
//	srv.Stop(shutdownCtx)
package server
