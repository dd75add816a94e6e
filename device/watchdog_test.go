package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchdog_Expired(t *testing.T) {
	assert := assert.New(t)

	wd := &Watchdog{Limit: 4}
	wd.Reset()

	for now := range 4 {
		assert.False(wd.Tick(now))
		assert.False(wd.Expired())
	}

	wd.Tick(4)
	assert.True(wd.Expired())
}

func TestWatchdog_Pet(t *testing.T) {
	assert := assert.New(t)

	wd := &Watchdog{Limit: 2}
	wd.Reset()

	for now := range 10 {
		wd.Tick(now)
		wd.Pet()
	}

	assert.False(wd.Expired())
}

func TestWatchdog_Reset_Default(t *testing.T) {
	assert := assert.New(t)

	wd := &Watchdog{}
	wd.Reset()

	assert.Equal(WATCHDOG_DEFAULT_LIMIT, wd.Limit)
	assert.False(wd.Expired())
}
