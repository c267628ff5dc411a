package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	deviceKey    ctxKey = "device"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithDevice stores the client device class ("desktop" or "mobile") in the context.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, deviceKey, device)
}

// DeviceFromCtx extracts the device class from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func DeviceFromCtx(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(deviceKey).(string)
	if !ok || d == "" {
		return "", false
	}
	return d, true
}
