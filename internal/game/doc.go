// Package game implements the blackjack rules engine.
//
// The main type is Engine, which deals and resolves single-deck rounds.
// An Engine holds no round state of its own: every round lives in an
// explicit *Round value that is passed to Hit and Stand, so any number of
// independent rounds can be played with one engine (or one engine each).
//
// # Basic Usage
//
//	e := game.NewEngine(randutil.New(42), logger)
//	r, err := e.StartRound()
//	if !r.IsTerminal() {
//	    busted, err := e.Hit(r)
//	    ...
//	    outcome, err := e.Stand(r)
//	}
//
// After a terminal outcome the caller starts a new round; the engine never
// restarts on its own.
//
// # Presentation
//
// Round exposes read-only accessors and a Snapshot for renderers. The
// dealer's second card is flagged hidden until the player stands; that
// flag is a display hint only, the engine always knows the full hand.
// Renderers that prefer push updates can subscribe to the engine's
// EventBus instead of polling snapshots.
package game
