package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator hands out a fixed token so references are predictable.
type stubGenerator struct {
	token string
}

func (g stubGenerator) NewToken() string {
	return g.token
}

func stockholm(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)
	return loc
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, SeatedTable, KindOf("table"))
	assert.Equal(t, GameSlot, KindOf("pool"))
	assert.Equal(t, GameSlot, KindOf("dart"))
	// Typos are billed as game slots, not rejected.
	assert.Equal(t, GameSlot, KindOf("tabel"))
}

func TestClampSlots(t *testing.T) {
	cases := map[int]int{
		-3: 1,
		0:  1,
		1:  1,
		2:  2,
		5:  2,
	}
	for requested, want := range cases {
		assert.Equal(t, want, ClampSlots(requested), "requested=%d", requested)
	}
}

func TestComputeWindowGameSlot(t *testing.T) {
	loc := stockholm(t)

	window, err := ComputeWindow(GameSlot, "2025-09-01", "18:00", 2, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 9, 1, 18, 0, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2025, 9, 1, 19, 30, 0, 0, loc), window.End)
	assert.Equal(t, 2, window.Slots)
	assert.Equal(t, 90*time.Minute, window.End.Sub(window.Start))
}

func TestComputeWindowDurationPerSlot(t *testing.T) {
	loc := stockholm(t)

	for requested, wantMinutes := range map[int]time.Duration{0: 45, 1: 45, 2: 90, 5: 90} {
		window, err := ComputeWindow(GameSlot, "2025-09-01", "12:00", requested, loc)
		require.NoError(t, err)
		assert.Equal(t, wantMinutes*time.Minute, window.End.Sub(window.Start), "requested=%d", requested)
	}
}

func TestComputeWindowSeatedTable(t *testing.T) {
	loc := stockholm(t)

	// Slot count is ignored for the table.
	window, err := ComputeWindow(SeatedTable, "2025-09-01", "20:00", 5, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 9, 1, 20, 0, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2025, 9, 1, 21, 10, 0, 0, loc), window.End)
	assert.Equal(t, 1, window.Slots)
}

func TestComputeWindowAcceptsSeconds(t *testing.T) {
	loc := stockholm(t)

	window, err := ComputeWindow(GameSlot, "2025-09-01", "18:00:00", 1, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 18, 0, 0, 0, loc), window.Start)
}

func TestComputeWindowInvalidTimeSpec(t *testing.T) {
	loc := stockholm(t)

	_, err := ComputeWindow(GameSlot, "not-a-date", "18:00", 1, loc)
	assert.ErrorIs(t, err, ErrInvalidTimeSpec)

	_, err = ComputeWindow(GameSlot, "2025-09-01", "half past six", 1, loc)
	assert.ErrorIs(t, err, ErrInvalidTimeSpec)
}

func TestComputeWindowIsDeterministic(t *testing.T) {
	loc := stockholm(t)

	first, err := ComputeWindow(GameSlot, "2025-09-01", "18:00", 2, loc)
	require.NoError(t, err)
	second, err := ComputeWindow(GameSlot, "2025-09-01", "18:00", 2, loc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputePrice(t *testing.T) {
	assert.Equal(t, 50, ComputePrice(GameSlot, 1))
	assert.Equal(t, 100, ComputePrice(GameSlot, 2))
	assert.Equal(t, 0, ComputePrice(SeatedTable, 1))
	assert.Equal(t, 0, ComputePrice(SeatedTable, 2))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPendingPayment, InitialStatus(GameSlot))
	assert.Equal(t, StatusConfirmed, InitialStatus(SeatedTable))
}

func TestPaymentReference(t *testing.T) {
	gen := stubGenerator{token: "deadbeef-0000-4000-8000-000000000000"}

	ref := PaymentReference(GameSlot, gen)
	require.NotNil(t, ref)
	assert.Equal(t, "BOKNING DEADBEEF", *ref)

	assert.Nil(t, PaymentReference(SeatedTable, gen))
}
