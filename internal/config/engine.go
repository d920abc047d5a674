// internal/config/engine.go
//
// Validation rule engine.
//
// Context
// -------
// `Validate()` evaluates the whole rule table against a raw Settings
// store.  For each rule it resolves the effective value (store value,
// else the rule's default), applies the cast, and checks the acceptance
// condition.  Evaluation is whole-set: every violated rule lands in one
// aggregated ValidationError, so a single failed startup surfaces every
// problem at once instead of one per restart.
//
// Notes
// -----
//   • A rule with neither a default nor a supplied value is skipped;
//     optionality is the typed record's concern.
//   • On success the validated store carries the cast values plus any
//     undeclared raw keys, so diagnostic callers see the full picture.

package config

import (
	"fmt"

	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/multierr"
)

// RuleViolation is one setting that failed its cast or condition.
type RuleViolation struct {
	Key     string
	Message string
}

func (v *RuleViolation) Error() string { return v.Key + ": " + v.Message }

// ValidationError aggregates every rule violation from one validation
// run.  It is fatal: no validated store exists when it is returned.
type ValidationError struct {
	Violations []*RuleViolation

	combined error
}

func (e *ValidationError) Error() string {
	return "invalid server configuration: " + e.combined.Error()
}

// Unwrap exposes the combined per-rule errors for errors.Is/As.
func (e *ValidationError) Unwrap() error { return e.combined }

// ValidatedSettings is the settings store after every rule has passed:
// each declared key is present (directly or via its default) with its
// cast value, or legitimately absent when optional and unset.
type ValidatedSettings struct {
	k *koanf.Koanf
}

// Has reports whether a dotted key holds a value.
func (v *ValidatedSettings) Has(key string) bool { return v.k.Exists(key) }

// Get returns the cast value for a dotted key, or nil when absent.
func (v *ValidatedSettings) Get(key string) any { return v.k.Get(key) }

// Int returns the integer at key, or 0 when absent.
func (v *ValidatedSettings) Int(key string) int { return v.k.Int(key) }

// String returns the string at key, or "" when absent.
func (v *ValidatedSettings) String(key string) string { return v.k.String(key) }

// StringMap returns the mapping at key; empty, never nil, when absent.
func (v *ValidatedSettings) StringMap(key string) map[string]string { return v.k.StringMap(key) }

// All returns a flat dotted-key → value map, for diagnostics.
func (v *ValidatedSettings) All() map[string]any { return v.k.All() }

// Validate applies the full server rule table to raw.  It returns the
// validated store, or a *ValidationError naming every violated key.
func Validate(raw *Settings) (*ValidatedSettings, error) {
	return applyRules(raw, serverRules())
}

func applyRules(raw *Settings, rules []Rule) (*ValidatedSettings, error) {
	out := koanf.New(".")
	if err := out.Merge(raw.k); err != nil {
		return nil, fmt.Errorf("copy raw settings: %w", err)
	}

	var violations []*RuleViolation
	for _, rule := range rules {
		val := raw.Get(rule.Key)
		if val == nil {
			if rule.Default == nil {
				continue // optional and unset
			}
			val = rule.Default
		}

		if rule.Cast != nil {
			cast, err := rule.Cast(val)
			if err != nil {
				violations = append(violations, &RuleViolation{Key: rule.Key, Message: rule.Message})
				continue
			}
			val = cast
		}

		if rule.Condition != nil && !rule.Condition(val) {
			violations = append(violations, &RuleViolation{Key: rule.Key, Message: rule.Message})
			continue
		}

		if err := out.Set(rule.Key, val); err != nil {
			return nil, fmt.Errorf("store validated value for %s: %w", rule.Key, err)
		}
	}

	if len(violations) > 0 {
		errs := make([]error, len(violations))
		for i, v := range violations {
			errs[i] = v
		}
		return nil, &ValidationError{Violations: violations, combined: multierr.Combine(errs...)}
	}

	return &ValidatedSettings{k: out}, nil
}
