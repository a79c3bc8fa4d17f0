package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/kikiarya/hsc-planner/internal/config"
	"github.com/kikiarya/hsc-planner/internal/notify"
	"github.com/kikiarya/hsc-planner/internal/reconciler"
)

type toggleOptions struct {
	Code     string
	Name     string
	Category string
	Reason   string
	Quiet    bool
	Linger   bool
}

func policyFor(mode string) reconciler.Policy {
	if mode == config.SerializationGlobal {
		return reconciler.Global
	}
	return reconciler.PerKey
}

// runToggle loads the current selection, toggles one subject through the
// reconciler and prints notices, the outcome and the resulting list.
// A rolled back or dropped toggle is reported as an error.
func runToggle(ctx context.Context, out io.Writer, store reconciler.Store, cfg config.ClientConfig, logger *slog.Logger, opts toggleOptions) error {
	var (
		notifier reconciler.Notifier
		printed  sync.WaitGroup
		w        = &lockedWriter{w: out}
	)
	if opts.Quiet {
		notifier = notify.NewLogNotifier(logger)
	} else {
		banner := notify.NewBanner(cfg.NoticeTTL, logger)
		defer banner.Close()

		events, cancel := banner.Subscribe(16)
		defer func() {
			cancel()
			printed.Wait()
		}()
		printed.Add(1)
		go func() {
			defer printed.Done()
			for ev := range events {
				printEvent(w, ev)
			}
		}()
		notifier = banner
	}

	rec := reconciler.New(store, notifier, logger,
		reconciler.WithPolicy(policyFor(cfg.Serialization)),
		reconciler.WithRequestTimeout(cfg.RequestTimeout),
	)
	if err := rec.Refresh(ctx); err != nil {
		return fmt.Errorf("load selections: %w", err)
	}

	res := <-rec.Toggle(ctx, reconciler.Item{
		Key:  reconciler.Key{Code: opts.Code, Name: opts.Name},
		Meta: reconciler.Meta{Category: opts.Category, Reason: opts.Reason},
	})
	rec.Wait()

	if opts.Linger && !opts.Quiet {
		select {
		case <-time.After(cfg.NoticeTTL + 100*time.Millisecond):
		case <-ctx.Done():
		}
	}

	fmt.Fprintf(w, "%s %s: %s\n", res.Action, res.Key, res.Status)
	printSelection(w, rec.Items())

	switch res.Status {
	case reconciler.StatusRolledBack:
		return fmt.Errorf("toggle %s rolled back: %w", res.Key, res.Err)
	case reconciler.StatusDropped:
		if res.Err != nil {
			return fmt.Errorf("toggle %s: %w", res.Key, res.Err)
		}
		return fmt.Errorf("toggle %s dropped: already in flight", res.Key)
	}
	return nil
}

func printEvent(w io.Writer, ev notify.Event) {
	if ev.Dismissed {
		fmt.Fprintf(w, "  (dismissed) %s\n", ev.Notice.Message)
		return
	}
	mark := "+"
	if ev.Notice.Kind == reconciler.NoticeError {
		mark = "!"
	}
	fmt.Fprintf(w, "%s %s\n", mark, ev.Notice.Message)
}

func printSelection(w io.Writer, items []reconciler.Record) {
	if len(items) == 0 {
		fmt.Fprintln(w, "selection is empty")
		return
	}
	fmt.Fprintf(w, "selection (%d):\n", len(items))
	for _, it := range items {
		switch r := it.(type) {
		case reconciler.Confirmed:
			fmt.Fprintf(w, "  %-8s %s\n", r.Key.Code, r.Key.Name)
		case reconciler.Pending:
			fmt.Fprintf(w, "  %-8s %s (saving)\n", r.Key.Code, r.Key.Name)
		}
	}
}

// lockedWriter serializes writes from the notice printer and the caller.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
