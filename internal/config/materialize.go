// internal/config/materialize.go
//
// Typed Config Materializer: validated store → ServerConfig.
//
// Context
// -------
// Runs after the rule engine, so every value it reads is already cast
// and accepted.  Two one-time derivations happen here:
//
//  1. advertise_port falls back to listen_port when not supplied.
//  2. The "none" exporter sentinel becomes a nil ExporterType.
//
// No I/O.  The only failure mode is the defensive construction check:
// a value escaping the rule engine's contract is an invariant
// violation, not a user error.

package config

import "fmt"

func materialize(v *ValidatedSettings) (*ServerConfig, error) {
	listenPort := v.Int(sKey(keyListenPort))

	// advertise port defaults to the value of listen port
	advertisePort := v.Int(sKey(keyAdvertisePort))
	if advertisePort == 0 {
		advertisePort = listenPort
	}

	var exporter *OtelExporterType
	if raw := v.String(sKey(keyOtelExporterType)); raw != "" && raw != otelExporterNone {
		parsed, err := ParseOtelExporterType(raw)
		if err != nil {
			return nil, fmt.Errorf("construct server config: %w", err)
		}
		exporter = &parsed
	}

	traceKeys := make(map[string]string)
	for name, logKey := range v.StringMap(sKey(keyLogTraceKeys)) {
		traceKeys[name] = logKey
	}

	cfg := &ServerConfig{
		ListenHost:    v.String(sKey(keyListenHost)),
		ListenPort:    listenPort,
		AdvertiseHost: v.String(sKey(keyAdvertiseHost)),
		AdvertisePort: advertisePort,

		TaskThreads: v.Int(sKey(keyTaskThreads)),

		MetricsHost:     optionalString(v, sKey(keyMetricsHost)),
		MetricsPort:     v.Int(sKey(keyMetricsPort)),
		HealthCheckHost: optionalString(v, sKey(keyHealthCheckHost)),
		HealthCheckPort: v.Int(sKey(keyHealthCheckPort)),

		MallocTrimIntervalSec: v.Int(sKey(keyMallocTrimIntervalSec)),

		LogEventKeyName: v.String(sKey(keyLogEventKeyName)),
		LogTraceKeys:    traceKeys,

		Otel: OtelConfig{
			ExporterType:      exporter,
			ServiceName:       v.String(sKey(keyOtelServiceName)),
			ServiceNamespace:  optionalString(v, sKey(keyOtelServiceNamespace)),
			ServiceInstanceID: optionalString(v, sKey(keyOtelServiceInstanceID)),
		},
	}

	if err := validateStruct(cfg); err != nil {
		return nil, fmt.Errorf("construct server config: %w", err)
	}
	return cfg, nil
}

// optionalString returns nil when the key is absent, keeping "not
// configured" distinct from "configured as empty".
func optionalString(v *ValidatedSettings, key string) *string {
	if !v.Has(key) {
		return nil
	}
	val := v.String(key)
	return &val
}
