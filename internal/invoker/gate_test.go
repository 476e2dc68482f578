package invoker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGateFirstTriggerNeverDispatches(t *testing.T) {
	g := NewGate(time.Minute)

	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	assert.Equal(t, Armed, NewGate(time.Minute).Trigger("accounts.block", true))
}

func TestGateConfirmedSecondTriggerDispatches(t *testing.T) {
	g := NewGate(time.Minute)

	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	assert.Equal(t, Dispatch, g.Trigger("accounts.block", true))

	// Dispatch resets to idle: the next trigger arms again.
	assert.Equal(t, Armed, g.Trigger("accounts.block", true))
}

func TestGateUnconfirmedTriggerStaysArmed(t *testing.T) {
	g := NewGate(time.Minute)

	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	assert.Equal(t, Dispatch, g.Trigger("accounts.block", true))
}

func TestGateDescriptorsAreIndependent(t *testing.T) {
	g := NewGate(time.Minute)

	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	assert.Equal(t, Armed, g.Trigger("accounts.close", true))
	assert.Equal(t, Dispatch, g.Trigger("accounts.block", true))
}

func TestGateArmedStateExpires(t *testing.T) {
	g := NewGate(10 * time.Millisecond)

	assert.Equal(t, Armed, g.Trigger("accounts.block", false))
	time.Sleep(20 * time.Millisecond)

	// Expired arm: the confirmed trigger re-arms instead of firing.
	assert.Equal(t, Armed, g.Trigger("accounts.block", true))
}

func TestGateReset(t *testing.T) {
	g := NewGate(time.Minute)

	g.Trigger("accounts.block", false)
	g.Reset("accounts.block")

	assert.Equal(t, Armed, g.Trigger("accounts.block", true))
}
