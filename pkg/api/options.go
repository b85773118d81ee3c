package api

import (
	"time"

	"github.com/voidshard/hopper/pkg/structs"
)

const (
	defMaxQueryRetries   = 5
	defSeverityThreshold = 4
)

// OptionsClientDefault suits an interactive caller watching a single job:
// tight polling, modest backoff, and we give up waiting inside half an hour.
func OptionsClientDefault() *structs.Options {
	return &structs.Options{
		PollInterval:      2 * time.Second,
		MaxPollInterval:   10 * time.Second,
		MaxElapsed:        20 * time.Minute,
		MaxQueryRetries:   defMaxQueryRetries,
		SeverityThreshold: defSeverityThreshold,
		Selectors:         structs.DefaultSelectors(),
	}
}

// OptionsServerDefault suits a long lived service tracking many jobs at
// once: gentler polling and a wider window before a slow remote queue is
// called a timeout.
func OptionsServerDefault() *structs.Options {
	return &structs.Options{
		PollInterval:      3 * time.Second,
		MaxPollInterval:   30 * time.Second,
		MaxElapsed:        30 * time.Minute,
		MaxQueryRetries:   defMaxQueryRetries,
		SeverityThreshold: defSeverityThreshold,
		Selectors:         structs.DefaultSelectors(),
	}
}
