//go:build unit

package dhcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProberAdapter(t *testing.T) {
	adapter := NewProberAdapter()
	assert.NotNil(t, adapter)
}

func TestProberAdapter_Probe_MissingInterface(t *testing.T) {
	// a real probe needs an interface with a DHCP server behind it; here we
	// only verify that a bogus interface fails cleanly
	adapter := NewProberAdapter()

	_, err := adapter.Probe(context.Background(), "nonexistent0", time.Second)
	assert.Error(t, err)
}
