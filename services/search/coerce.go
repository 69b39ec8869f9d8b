package search

import (
	"fmt"
	"math"
	"math/rand"
)

// Field coercion policy: a value is taken from the parsed record only when it
// is present under one of the given keys AND already the expected primitive
// type. Anything else gets the documented default.

func stringField(rec map[string]interface{}, fallback string, keys ...string) string {
	for _, k := range keys {
		if v, ok := rec[k].(string); ok && v != "" {
			return v
		}
	}
	return fallback
}

func floatField(rec map[string]interface{}, fallback float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := rec[k].(float64); ok {
			return v
		}
	}
	return fallback
}

func intField(rec map[string]interface{}, fallback int, keys ...string) int {
	for _, k := range keys {
		// JSON numbers decode as float64; accept only whole values.
		if v, ok := rec[k].(float64); ok && v == math.Trunc(v) {
			return int(v)
		}
	}
	return fallback
}

func stringListField(rec map[string]interface{}, fallback []string, keys ...string) []string {
	for _, k := range keys {
		raw, ok := rec[k].([]interface{})
		if !ok || len(raw) == 0 {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return append([]string(nil), fallback...)
}

// randomPrice fabricates a plausible price inside an inclusive range, rounded
// to whole units so it reads like a quoted fare.
func randomPrice(min, max float64) float64 {
	return math.Round(min + rand.Float64()*(max-min))
}

// clockTime renders minutes-since-midnight as "15:04", wrapping past
// midnight.
func clockTime(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
