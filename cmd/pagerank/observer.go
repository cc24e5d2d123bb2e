package main

import "log/slog"

// slogObserver bridges the solver's progress hooks onto structured
// logging: iteration starts at Info, residuals at Debug.
type slogObserver struct {
	log *slog.Logger
}

func (o *slogObserver) OnIterationStart(iter int) {
	o.log.Info("iteration", "n", iter)
}

func (o *slogObserver) OnIterationEnd(iter int, residual float64) {
	o.log.Debug("iteration finished", "n", iter, "residual", residual)
}
