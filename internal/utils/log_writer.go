package utils

import (
	"errors"
	"io"
	"sync"
	"syscall"

	"go.uber.org/zap/zapcore"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// SyncingWriter is the log sink handed to zap. Writes are serialized and
// buffered destinations are flushed after each entry, so log lines interleave
// cleanly with plan output written to stdout. Sync reaches the destination's
// own Sync or Flush when zap flushes the logger on exit.
type SyncingWriter struct {
	destination io.Writer
	mutex       sync.Mutex
}

// NewSyncingWriter wraps destination; an existing SyncingWriter is returned as is.
func NewSyncingWriter(destination io.Writer) zapcore.WriteSyncer {
	if destination == nil {
		destination = io.Discard
	}
	if existingWriter, wrapped := destination.(*SyncingWriter); wrapped {
		return existingWriter
	}
	return &SyncingWriter{destination: destination}
}

// Write writes one encoded log entry and flushes buffered destinations.
func (writer *SyncingWriter) Write(entry []byte) (int, error) {
	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.destination.Write(entry)
	if writeError != nil {
		return bytesWritten, writeError
	}
	if bufferedDestination, buffered := writer.destination.(flusher); buffered {
		return bytesWritten, bufferedDestination.Flush()
	}
	return bytesWritten, nil
}

// Sync flushes the destination. Terminals and pipes reject fsync; those errors are dropped.
func (writer *SyncingWriter) Sync() error {
	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	var syncError error
	switch destination := writer.destination.(type) {
	case syncer:
		syncError = destination.Sync()
	case flusher:
		syncError = destination.Flush()
	}

	if errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL) || errors.Is(syncError, syscall.ENOTTY) {
		return nil
	}
	return syncError
}
