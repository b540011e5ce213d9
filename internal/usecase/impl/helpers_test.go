package impl

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"warehouse/internal/domain/ledger"
	"warehouse/internal/domain/service"
)

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sequentialIDs(prefix string) func() string {
	n := 0

	return func() string {
		n++

		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newTestDispatcher returns a dispatcher with a fixed clock and predictable ids.
func newTestDispatcher(publisher service.EventPublisher) *dispatcher {
	clock := func() time.Time { return testNow }
	engine := ledger.NewEngine(ledger.WithClock(clock), ledger.WithIDGenerator(sequentialIDs("tx")))

	d := newDispatcher(engine, publisher, newDiscardLogger())
	d.now = clock
	d.newID = sequentialIDs("id")

	return d
}
