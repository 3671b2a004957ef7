package importer

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/parser"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/roster"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/store"
)

// Coordinator loads a roster file, normalises it and replaces the store snapshot
type Coordinator struct {
	store      *store.MemoryStore
	normalizer *roster.Normalizer
	logger     *zap.Logger
	now        func() time.Time
}

// NewCoordinator creates an import coordinator; a nil logger disables logging
func NewCoordinator(st *store.MemoryStore, normalizer *roster.Normalizer, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:      st,
		normalizer: normalizer,
		logger:     logger,
		now:        time.Now,
	}
}

// ImportOptions one import request
type ImportOptions struct {
	Name   string    // file name, used for format detection
	Reader io.Reader // file contents
	Sheet  string    // XLSX sheet; empty = auto
}

// Report outcome of a successful import
type Report struct {
	SnapshotID string           `json:"snapshotId"`
	Filename   string           `json:"filename"`
	Format     parser.Format    `json:"format"`
	Sheet      string           `json:"sheet,omitempty"`
	Rows       int              `json:"rows"`
	Employees  int              `json:"employees"`
	Active     int              `json:"active"`
	Warnings   []parser.Warning `json:"warnings"`
	Duration   time.Duration    `json:"duration"`
}

// ProgressEvent one step of an asynchronous import
type ProgressEvent struct {
	Type      string      `json:"type"` // start/parsed/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import runs the whole pipeline synchronously.
// The store keeps its previous snapshot when anything fails.
func (c *Coordinator) Import(opts ImportOptions) (*Report, error) {
	return c.run(opts, func(ProgressEvent) {})
}

// ImportAsync runs Import in the background, streaming progress; the channel closes when done
func (c *Coordinator) ImportAsync(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 16)

	go func() {
		defer close(progressChan)
		send := func(ev ProgressEvent) { progressChan <- ev }

		report, err := c.run(opts, send)
		if err != nil {
			send(ProgressEvent{Type: "error", Message: err.Error(), Timestamp: c.now()})
			return
		}
		send(ProgressEvent{Type: "done", Message: "import finished", Data: report, Timestamp: c.now()})
	}()

	return progressChan
}

func (c *Coordinator) run(opts ImportOptions, send func(ProgressEvent)) (*Report, error) {
	start := time.Now()
	name := filepath.Base(opts.Name)

	send(ProgressEvent{
		Type:      "start",
		Message:   "reading roster file",
		Data:      map[string]string{"filename": name},
		Timestamp: c.now(),
	})

	data, err := io.ReadAll(opts.Reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	res, err := parser.Load(name, bytes.NewReader(data), parser.Options{Sheet: opts.Sheet})
	if err != nil {
		c.logger.Warn("roster import failed", zap.String("file", name), zap.Error(err))
		return nil, err
	}

	send(ProgressEvent{
		Type:    "parsed",
		Message: fmt.Sprintf("%d rows read", len(res.Rows)),
		Data: map[string]interface{}{
			"rows":     len(res.Rows),
			"warnings": len(res.Warnings),
			"headers":  res.Headers,
		},
		Timestamp: c.now(),
	})

	emps := c.normalizer.NormalizeAll(res.Rows)
	snap := store.NewSnapshot(name, res, emps, c.now())
	c.store.Replace(snap)

	active := 0
	for _, e := range emps {
		if e.Active() {
			active++
		}
	}

	report := &Report{
		SnapshotID: snap.ID,
		Filename:   name,
		Format:     res.Format,
		Sheet:      res.Sheet,
		Rows:       snap.Rows,
		Employees:  len(emps),
		Active:     active,
		Warnings:   snap.Warnings,
		Duration:   time.Since(start),
	}

	c.logger.Sugar().Infow("roster imported",
		"file", name,
		"format", res.Format,
		"rows", report.Rows,
		"warnings", len(report.Warnings),
		"duration", report.Duration,
	)
	return report, nil
}
