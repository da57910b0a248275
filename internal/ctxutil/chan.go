package ctxutil

import "context"

// Next receives from channel, giving up when ctx is done.
func Next[T any](ctx context.Context, channel <-chan T) (out T, ok bool) {
	select {
	case out = <-channel:
		return out, true
	case <-ctx.Done():
		return out, false
	}
}

// Send delivers v on channel unless ctx is done first.
func Send[T any](ctx context.Context, channel chan<- T, v T) bool {
	select {
	case channel <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
