// internal/config/read.go
//
// Resolution pipeline entry point.
//
// Context
// -------
// `Read()` runs the three stages in order:
//
//   Source Resolver  →  Validation Rule Engine  →  Typed Materializer
//
// and returns both the validated store (raw access for diagnostics)
// and the immutable ServerConfig.  Any stage failing is fatal to the
// pipeline; callers print the error and abort startup.
//
// Logs use the global sugared logger (`zap.S()`) so early boot issues
// surface even before the file logger is installed.

package config

import "go.uber.org/zap"

// Read builds the server configuration from the given settings files
// (in order, later overriding earlier) plus environment overrides.
func Read(files ...string) (*ValidatedSettings, *ServerConfig, error) {
	raw, err := Resolve(files...)
	if err != nil {
		zap.S().Errorw("config source resolution failed", "err", err)
		return nil, nil, err
	}
	zap.S().Debugw("config sources resolved", "files", files)

	validated, err := Validate(raw)
	if err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, nil, err
	}

	cfg, err := materialize(validated)
	if err != nil {
		zap.S().Errorw("config construction failed", "err", err)
		return nil, nil, err
	}

	zap.S().Infow("config loaded",
		"listen_host", cfg.ListenHost,
		"listen_port", cfg.ListenPort,
		"advertise_host", cfg.AdvertiseHost,
		"advertise_port", cfg.AdvertisePort,
		"task_threads", cfg.TaskThreads,
	)
	return validated, cfg, nil
}
