package embedding

import (
	"context"
	"sync"
	"time"
)

// RequestRecord captures one embedding API call.
type RequestRecord struct {
	Model     string
	Purpose   string
	TextCount int
	LatencyMs int64
	Success   bool
	Error     string
	Timestamp time.Time
}

// RequestLog is an in-memory, append-only log of embedding requests.
// Safe for concurrent use.
type RequestLog struct {
	mu      sync.Mutex
	records []RequestRecord
}

// NewRequestLog creates an empty RequestLog.
func NewRequestLog() *RequestLog {
	return &RequestLog{}
}

// Append records one request.
func (l *RequestLog) Append(rec RequestRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// All returns a copy of all recorded requests in append order.
func (l *RequestLog) All() []RequestRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RequestRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Summary aggregates the log: total calls, failures, mean latency.
func (l *RequestLog) Summary() (total, failures int, meanLatencyMs float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total = len(l.records)
	var latencySum int64
	for _, r := range l.records {
		if !r.Success {
			failures++
		}
		latencySum += r.LatencyMs
	}
	if total > 0 {
		meanLatencyMs = float64(latencySum) / float64(total)
	}
	return total, failures, meanLatencyMs
}

// LoggingProvider is a decorator that records every embedding request.
type LoggingProvider struct {
	inner Provider
	log   *RequestLog
}

// WithRequestLog wraps a Provider with request logging.
func WithRequestLog(p Provider, log *RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	vec, err := l.inner.Embed(ctx, text)
	l.record(ctx, 1, start, err)
	return vec, err
}

func (l *LoggingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	vecs, err := l.inner.EmbedBatch(ctx, texts)
	l.record(ctx, len(texts), start, err)
	return vecs, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) record(ctx context.Context, count int, start time.Time, err error) {
	if l.log == nil {
		return
	}
	rec := RequestRecord{
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		TextCount: count,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Timestamp: start,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	l.log.Append(rec)
}
