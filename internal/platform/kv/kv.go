// Package kv is the durable key-value store shared by the HTTP client
// (auth token) and the dwell tracker (elapsed seconds per material).
package kv

import "context"

const (
	KeyToken  = "token"
	KeyUserID = "userId"
	KeyRole   = "role"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
