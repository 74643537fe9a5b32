// Package application wires the game engine to its collaborators: the
// save file, the agents and the run loop.
package application

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"

	"github.com/luca-patrignani/lama/domain/lama"
)

// Orchestrator owns an engine and its save file. It drives the match and
// snapshots the state after every step, so an interrupted match resumes
// from the last successful save.
type Orchestrator struct {
	engine   *lama.GameEngine
	savePath string
	logger   *slog.Logger
}

// New creates an orchestrator around an already built engine.
func New(engine *lama.GameEngine, savePath string, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{engine: engine, savePath: savePath, logger: logger}
}

// LoadOrNew restores the match from savePath when the file exists,
// otherwise builds a fresh match with newGame and saves it. The registry
// resolves persisted agent kinds.
func LoadOrNew(savePath string, registry map[string]lama.AgentFactory, newGame func() (*lama.GameEngine, error), rng *rand.Rand, logger *slog.Logger) (*Orchestrator, error) {
	data, err := os.ReadFile(savePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		engine, err := newGame()
		if err != nil {
			return nil, err
		}
		o := New(engine, savePath, logger)
		if err := o.Save(); err != nil {
			return nil, err
		}
		logger.Info("new match", "save", savePath)
		return o, nil
	case err != nil:
		return nil, fmt.Errorf("read save file: %w", err)
	default:
		engine, err := lama.LoadGameEngine(data, registry, rng, logger)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", savePath, err)
		}
		logger.Info("match resumed", "save", savePath)
		return New(engine, savePath, logger), nil
	}
}

// Engine returns the orchestrated engine.
func (o *Orchestrator) Engine() *lama.GameEngine {
	return o.engine
}

// Run drives the match to completion, saving after every step. The save
// file is removed once the match ends.
func (o *Orchestrator) Run() error {
	for o.engine.Phase() != lama.PhaseGameEnd {
		o.engine.Step()
		if o.engine.Phase() == lama.PhaseGameEnd {
			break
		}
		if err := o.Save(); err != nil {
			return err
		}
	}
	if err := os.Remove(o.savePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		o.logger.Warn("could not remove finished save file", "save", o.savePath, "error", err)
	}
	return nil
}

// Save writes the current snapshot to the save file.
func (o *Orchestrator) Save() error {
	data, err := o.engine.Save()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := os.WriteFile(o.savePath, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}
