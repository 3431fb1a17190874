package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"homework-bot/internal/models"
	"homework-bot/internal/practicum"
)

// Poller is the subset of the practicum client the monitor needs.
type Poller interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (*practicum.StatusesResponse, error)
}

// Notifier delivers one text message to the chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// History records delivered notifications. Best-effort: failures are
// logged, never propagated.
type History interface {
	InsertNotification(ctx context.Context, n models.Notification) error
}

// State carries everything one cycle needs from the previous one. Keeping
// it explicit (instead of package-level variables) lets a single cycle be
// tested in isolation.
type State struct {
	// Cursor is the from_date passed to the next poll, advanced to the
	// server's current_date after each successful cycle.
	Cursor int64

	// LastStatus suppresses re-notification while the first homework's
	// status stays the same.
	LastStatus string

	// LastError suppresses repeated error reports with identical text.
	LastError string
}

// Monitor runs the poll/translate/notify loop.
type Monitor struct {
	poller   Poller
	notifier Notifier
	history  History // nil disables the audit log
	interval time.Duration
	log      *slog.Logger
}

func New(poller Poller, notifier Notifier, history History, interval time.Duration, log *slog.Logger) *Monitor {
	return &Monitor{
		poller:   poller,
		notifier: notifier,
		history:  history,
		interval: interval,
		log:      log,
	}
}

// Run executes the polling loop until ctx is cancelled. The interval is
// observed after every cycle, success or failure.
func (m *Monitor) Run(ctx context.Context) {
	state := State{Cursor: time.Now().Unix()}
	m.log.Info("monitor started",
		slog.Duration("interval", m.interval),
		slog.Int64("cursor", state.Cursor))

	for {
		state = m.RunCycle(ctx, state)

		select {
		case <-ctx.Done():
			m.log.Info("monitor stopped")
			return
		case <-time.After(m.interval):
		}
	}
}

// RunCycle performs one poll/validate/translate/notify pass and returns the
// state the next cycle starts from. Any failure is reported to the chat
// unless its text matches the last reported error.
func (m *Monitor) RunCycle(ctx context.Context, state State) State {
	next, err := m.runCycle(ctx, state)
	if err == nil {
		return next
	}
	if ctx.Err() != nil {
		// Shutdown in flight; not a failure worth reporting.
		return next
	}

	m.log.Error("cycle failed", slog.String("error", err.Error()))

	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	if message == next.LastError {
		return next
	}

	if sendErr := m.notifier.Send(ctx, message); sendErr != nil {
		// LastError stays unchanged so the next cycle retries the report.
		m.log.Error("failed to report error to chat", slog.String("error", sendErr.Error()))
		return next
	}

	next.LastError = message
	m.record(ctx, models.Notification{Kind: models.KindError, Text: message})
	return next
}

func (m *Monitor) runCycle(ctx context.Context, state State) (State, error) {
	resp, err := m.poller.HomeworkStatuses(ctx, state.Cursor)
	if err != nil {
		return state, err
	}

	homeworks, err := practicum.CheckResponse(resp)
	if err != nil {
		return state, err
	}

	hw := homeworks[0]
	message, err := practicum.ParseStatus(hw)
	if err != nil {
		return state, err
	}

	if hw.Status != state.LastStatus {
		if err := m.notifier.Send(ctx, message); err != nil {
			return state, err
		}
		state.LastStatus = hw.Status
		m.record(ctx, models.Notification{
			HomeworkName: hw.Name,
			Status:       hw.Status,
			Kind:         models.KindStatus,
			Text:         message,
		})
	} else {
		m.log.Debug("no new status in the answer", slog.String("status", hw.Status))
	}

	if resp.CurrentDate > 0 {
		state.Cursor = resp.CurrentDate
	}

	return state, nil
}

func (m *Monitor) record(ctx context.Context, n models.Notification) {
	if m.history == nil {
		return
	}

	n.SentAt = time.Now()
	if err := m.history.InsertNotification(ctx, n); err != nil {
		m.log.Warn("failed to record notification", slog.String("error", err.Error()))
	}
}
