// internal/config/rules.go
//
// Declarative validation rules for every recognized setting.
//
// Context
// -------
// Each Rule binds one dotted key to an optional default, an optional
// cast, an acceptance condition, and the message reported when the rule
// is violated.  The engine in engine.go evaluates the whole table
// uniformly; adding a setting is one entry here, not a new conditional
// somewhere else.
//
// Notes
// -----
//   • A rule with no default and no supplied value is skipped: the key
//     stays optional and the typed record models it as a pointer.
//   • Cast failures surface through the same message as condition
//     failures, so one table row fully describes one setting.

package config

import (
	"fmt"
	"strconv"
)

// CastFunc coerces a raw source value into the rule's canonical type.
type CastFunc func(any) (any, error)

// Condition accepts or rejects a value after casting.
type Condition func(any) bool

// Rule is one declarative validation descriptor.
type Rule struct {
	Key       string
	Default   any // nil means no built-in default
	Cast      CastFunc
	Condition Condition
	Message   string
}

//
// casts
//

// castString renders scalars as strings; mappings and sequences are
// rejected so a mis-indented YAML block cannot masquerade as a value.
func castString(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", val), nil
	default:
		return nil, fmt.Errorf("value of type %T cannot be used as a string", v)
	}
}

// castInt accepts integer scalars, whole floats, and numeric strings.
func castInt(v any) (any, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return nil, fmt.Errorf("%v is not a whole number", val)
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", val)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("value of type %T cannot be used as a number", v)
	}
}

//
// conditions
//

func nonEmptyString(v any) bool {
	str, ok := v.(string)
	return ok && len(str) > 0
}

func positiveInt(v any) bool {
	n, ok := v.(int)
	return ok && n > 0
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[string]string:
		return true
	default:
		return false
	}
}

func supportedExporter(v any) bool {
	str, ok := v.(string)
	if !ok {
		return false
	}
	for _, e := range supportedExporters {
		if str == e {
			return true
		}
	}
	return false
}

// serverRules is the full rule table for the server section.  One entry
// per recognized key; the engine applies them whole-set.
func serverRules() []Rule {
	return []Rule{
		{
			Key:       sKey(keyListenHost),
			Default:   defaultListenHost,
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyListenHost + " must be an IP address or hostname.",
		},
		{
			Key:       sKey(keyListenPort),
			Default:   defaultListenPort,
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyListenPort + " must be a valid port number.",
		},
		{
			Key:       sKey(keyAdvertiseHost),
			Default:   defaultAdvertiseHost(),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyAdvertiseHost + " must be an IP address or hostname.",
		},
		{
			Key:       sKey(keyAdvertisePort),
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyAdvertisePort + " must be a valid port number.",
		},
		{
			Key:       sKey(keyTaskThreads),
			Default:   defaultTaskThreads,
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyTaskThreads + " must be a positive number.",
		},
		{
			Key:       sKey(keyMetricsHost),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyMetricsHost + " must be an IP address or hostname.",
		},
		{
			Key:       sKey(keyMetricsPort),
			Default:   defaultMetricsPort,
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyMetricsPort + " must be a valid port number.",
		},
		{
			Key:       sKey(keyHealthCheckHost),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyHealthCheckHost + " must be an IP address or hostname.",
		},
		{
			Key:       sKey(keyHealthCheckPort),
			Default:   defaultHealthCheckPort,
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyHealthCheckPort + " must be a valid port number.",
		},
		{
			Key:       sKey(keyMallocTrimIntervalSec),
			Default:   defaultMallocTrimIntervalSec,
			Cast:      castInt,
			Condition: positiveInt,
			Message:   keyMallocTrimIntervalSec + " must be a positive number.",
		},
		{
			Key:       sKey(keyLogEventKeyName),
			Default:   defaultLogEventKeyName,
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyLogEventKeyName + " must be a non-empty string.",
		},
		{
			Key:       sKey(keyLogTraceKeys),
			Default:   map[string]any{},
			Condition: isMapping,
			Message: keyLogTraceKeys + " must be a mapping between 'trace_id', 'span_id', " +
				"and 'parent_span_id' and the keys that should appear in structured log messages.",
		},
		{
			Key:       sKey(keyOtelExporterType),
			Cast:      castString,
			Condition: supportedExporter,
			Message:   keyOtelExporterType + " must be one of " + exporterList() + ".",
		},
		{
			Key:       sKey(keyOtelServiceName),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyOtelServiceName + " must be a non-empty string.",
		},
		{
			Key:       sKey(keyOtelServiceNamespace),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyOtelServiceNamespace + " must be a non-empty string.",
		},
		{
			Key:       sKey(keyOtelServiceInstanceID),
			Cast:      castString,
			Condition: nonEmptyString,
			Message:   keyOtelServiceInstanceID + " must be a non-empty string.",
		},
	}
}
