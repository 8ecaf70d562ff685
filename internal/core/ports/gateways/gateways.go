// Package gateways declares the outbound collaborators services talk to
// besides the database.
package gateways

import (
	"context"
	"io"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// Notifier queues a notification for asynchronous delivery.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// ReceiptStorage stores expense receipt files and returns their public URL.
type ReceiptStorage interface {
	// PutReceipt uploads the content under key and returns its URL.
	PutReceipt(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)

	// DeleteReceipt removes a previously uploaded receipt.
	DeleteReceipt(ctx context.Context, key string) error
}
