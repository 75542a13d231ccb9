package behavior_test

import (
	"context"
	"sync"
)

// Shared fixtures for the behavior tests.

type pingCommand struct {
	name string
}

func (c pingCommand) CommandName() string { return "Ping" }
func (c pingCommand) Payload() string     { return c.name }

type findQueryPayload struct {
	ID string `json:"id" validate:"required"`
}

type findQuery struct {
	data findQueryPayload
}

func (q findQuery) QueryName() string         { return "Find" }
func (q findQuery) Payload() findQueryPayload { return q.data }

type logRecord struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger captures AppLogger records for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *recordingLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log("info", msg, fields)
}

func (l *recordingLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log("debug", msg, fields)
}

func (l *recordingLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log("error", msg, fields)
}

func (l *recordingLogger) Trace(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log("trace", msg, fields)
}

func (l *recordingLogger) byLevel(level string) []logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logRecord
	for _, r := range l.records {
		if r.level == level {
			out = append(out, r)
		}
	}
	return out
}
