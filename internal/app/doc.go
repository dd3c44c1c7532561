// Package app provides the orchestration layer for memopad.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// record store, the state container and the UI. It is the composition root:
// every dependency is built here and handed down.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        data_dir, log_file, log_level
//	       ├─────> prefs.Load()         theme, remembered sort key
//	       ├─────> openLogger()         slog text handler on the log file
//	       ├─────> recordstore.Open()   SQLite file at schema version
//	       ├─────> state.New()          container over the repository
//	       └─────> ui.Run()             TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created
//
// Recoverable errors:
//   - The record store cannot be opened (missing permissions, a newer schema
//     version, a corrupt file). The failure is logged, the UI starts against
//     an inert repository and the error is shown in the root alert.
//
// Preferences never fail to load; bad files fall back to defaults.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("memopad failed: %v", err)
//	}
package app
