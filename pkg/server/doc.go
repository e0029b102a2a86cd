// Package server is the chatapp HTTP server.
//
// It renders the UI routes to full HTML pages, dispatches server function
// calls under /api/{fn}, serves the favicon and other built site files, and
// answers everything else with 404.
//
//	state := &server.State{DB: db, Options: cfg.RenderOptions(), Routes: app.Routes(), Functions: reg}
//	srv := server.New(state, server.DefaultServerConfig(),
//	    server.WithStatic(static.NewDir(cfg.SiteRoot())),
//	    server.WithLogger(logger),
//	)
//	err := srv.Run(ctx)
//
// Handlers get the State through their closures. It is also stored in each
// request context, see StateFrom, so server functions can reach the
// database.
package server
