package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound indicates a key holds no document.
var ErrNotFound = errors.New("record not found")

// Key is a namespaced document key. Each collection lives under its own key.
type Key string

const (
	KeyUsers         Key = "dataflow_users"
	KeyForms         Key = "dataflow_forms"
	KeyTenant        Key = "dataflow_tenant"
	KeyReminders     Key = "dataflow_reminders"
	KeyPayments      Key = "dataflow_payments"
	KeyActivityLogs  Key = "dataflow_activity_logs"
	KeyNotifications Key = "dataflow_notifications"
)

// AllKeys lists every persisted collection key.
var AllKeys = []Key{
	KeyUsers, KeyForms, KeyTenant, KeyReminders, KeyPayments, KeyActivityLogs, KeyNotifications,
}

// KV is the passive key/value mirror the application writes at save points.
// Keys are independent: there is no multi-key transaction.
type KV interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
	// SetIfAbsent writes value only when key is empty and reports whether it wrote.
	SetIfAbsent(ctx context.Context, key Key, value []byte) (bool, error)
	Delete(ctx context.Context, key Key) error
	Close() error
}

// LoadJSON decodes the document under key into dst. It returns false, nil when
// the key is empty.
func LoadJSON(ctx context.Context, kv KV, key Key, dst any) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes value and writes it under key.
func SaveJSON(ctx context.Context, kv KV, key Key, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
