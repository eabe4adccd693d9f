package logging

import (
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the logger stored with NewContext")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if got := FromContext(t.Context()); got == nil {
		t.Error("FromContext should never return nil")
	}
}
