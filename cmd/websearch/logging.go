package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"websearch/internal/eventbus"
)

// setupLogging points the global logger at path. The terminal belongs
// to the UI, so nothing is logged to stderr. An empty path disables logging.
func setupLogging(path, level string) (func(), error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	return func() { _ = f.Close() }, nil
}

// logEvents records every search lifecycle event in the log
func logEvents(bus eventbus.EventBus) func() {
	handler := func(e eventbus.DomainEvent) {
		ev := log.Debug().Str("event", string(e.Type()))
		switch e := e.(type) {
		case eventbus.SearchSubmittedEvent:
			ev = ev.Uint64("generation", e.Generation).Str("term", e.Query.Term).Int("page", e.Query.Page)
		case eventbus.SearchCompletedEvent:
			ev = ev.Uint64("generation", e.Generation).Int("items", e.ItemCount).Int("total", e.TotalEstimated)
		case eventbus.SearchFailedEvent:
			ev = ev.Uint64("generation", e.Generation).AnErr("cause", e.Err)
		case eventbus.SearchSupersededEvent:
			ev = ev.Uint64("generation", e.Generation).Uint64("current", e.Current)
		case eventbus.PageChangedEvent:
			ev = ev.Int("from", e.From).Int("to", e.To)
		}
		ev.Msg("search event")
	}

	var unsubs []func()
	for _, et := range []eventbus.EventType{
		eventbus.EventSearchSubmitted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventSearchSuperseded,
		eventbus.EventValidationFailed,
		eventbus.EventPageChanged,
	} {
		unsubs = append(unsubs, bus.Subscribe(et, handler))
	}

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
