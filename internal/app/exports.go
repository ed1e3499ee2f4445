package app

import (
	"context"

	"go.trai.ch/stravex/internal/adapters/watcher"
)

// exportMonitor collects the files saved during a run. A nil monitor is
// inactive.
type exportMonitor struct {
	stop      func() error
	cancel    context.CancelFunc
	collector *watcher.Collector
	done      chan struct{}
}

// watchExports starts the export folder watcher. Failures only disable the
// completion report.
func (a *App) watchExports(ctx context.Context, dir string) *exportMonitor {
	if a.watcher == nil || dir == "" {
		return nil
	}

	wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := a.watcher.Start(wctx, dir); err != nil {
		cancel()
		a.logger.Warn("not watching the export folder: " + err.Error())
		return nil
	}

	m := &exportMonitor{
		stop:      a.watcher.Stop,
		cancel:    cancel,
		collector: watcher.NewCollector(watcher.DefaultSettleWindow, nil),
		done:      make(chan struct{}),
	}
	go func() {
		defer close(m.done)
		m.collector.Consume(a.watcher.Events())
	}()
	return m
}

// finish stops watching and returns the settled file names. It returns nil
// for an inactive monitor.
func (m *exportMonitor) finish() []string {
	if m == nil {
		return nil
	}
	_ = m.stop()
	m.cancel()
	<-m.done
	m.collector.Flush()

	files := m.collector.Files()
	if files == nil {
		files = []string{}
	}
	return files
}
