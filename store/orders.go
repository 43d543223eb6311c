package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"velvet-cone/models"
)

// recordVersion tags each serialized order line so a corrupted or
// foreign line is detected deterministically instead of half-parsed.
const recordVersion = 1

type orderRecord struct {
	Version int `json:"v"`
	models.Order
}

// OrderLog is the append-only record of completed orders: one JSON
// record per line in the log file, mirrored by an in-memory history
// loaded at startup. Orders are never updated or deleted.
type OrderLog struct {
	path    string
	history []models.Order
}

func NewOrderLog(path string) *OrderLog {
	return &OrderLog{path: path}
}

// Load reads the whole log into memory. Lines that fail to parse, or
// that carry an unknown record version, are skipped without aborting
// the rest. A missing file just means no orders yet.
func (l *OrderLog) Load() error {
	l.history = nil

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open order log %s: %w", l.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec orderRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec.Version != recordVersion {
			continue
		}
		l.history = append(l.history, rec.Order)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read order log %s: %w", l.path, err)
	}
	return nil
}

// Append adds the order to the in-memory history and appends one line
// to the log file. The history keeps the order even when the file write
// fails; the caller reports the error and the process carries on.
func (l *OrderLog) Append(o models.Order) error {
	l.history = append(l.history, o)

	b, err := json.Marshal(orderRecord{Version: recordVersion, Order: o})
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", o.ID, err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order log %s: %w", l.path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("append order %d: %w", o.ID, err)
	}
	return nil
}

// History returns all loaded orders, oldest first.
func (l *OrderLog) History() []models.Order {
	out := make([]models.Order, len(l.history))
	copy(out, l.history)
	return out
}

func (l *OrderLog) Len() int {
	return len(l.history)
}
