// Package quiz holds the career quiz screen and the results screen it
// hands over to.
package quiz

import (
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/insights"
	"github.com/abhisek/aether/internal/store"
)

// Deps are the collaborators of the quiz screens. Everything but Engine may
// be nil: the quiz still scores, it just cannot persist or coach.
type Deps struct {
	Engine   *careerquiz.Engine
	Attempts store.AttemptRepo
	Insights *insights.Service
	Coach    *coach.Service
	Log      *zap.Logger
}

func (d Deps) engine() *careerquiz.Engine {
	if d.Engine == nil {
		return careerquiz.NewEngine(careerquiz.DefaultConfig())
	}
	return d.Engine
}

func (d Deps) log() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
