// Package config loads memopad's runtime configuration.
//
// # Overview
//
// Configuration is a small TOML file that says where memos are stored and
// where the application log goes. Every field is optional and the file
// itself may be absent.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memopad/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/memopad/config.toml
//   - Data directory: ~/.local/share/memopad
//   - Memo database: <data_dir>/memos.db
//   - Log file: <data_dir>/memopad.log
//   - Log level: info
//
// # TOML Format
//
//	data_dir  = "~/.local/share/memopad"
//	log_file  = "/tmp/memopad.log"
//	log_level = "debug"
//
// log_level accepts the names understood by slog.Level (debug, info, warn,
// error), case-insensitively.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are made
// absolute. Expansion applies to the config file location, data_dir and
// log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown log levels
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	store, err := recordstore.Open(ctx, cfg.StorePath(), recordstore.SchemaVersion)
package config
