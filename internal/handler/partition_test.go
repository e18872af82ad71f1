package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/repository"
)

func rowAt(start time.Time) repository.VenueShowRow {
	return repository.VenueShowRow{ArtistID: 1, ArtistName: "a", StartTime: start}
}

func startOf(r repository.VenueShowRow) time.Time { return r.StartTime }

func TestPartitionShowsSplitsAroundNow(t *testing.T) {
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	shows := []repository.VenueShowRow{
		rowAt(now.Add(-48 * time.Hour)),
		rowAt(now.Add(-time.Minute)),
		rowAt(now.Add(time.Minute)),
		rowAt(now.Add(72 * time.Hour)),
	}

	past, upcoming := partitionShows(shows, startOf, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, shows[0], past[0])
	assert.Equal(t, shows[1], past[1])
	assert.Equal(t, shows[2], upcoming[0])
	assert.Equal(t, shows[3], upcoming[1])
}

func TestPartitionShowsBoundaryIsUpcoming(t *testing.T) {
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	past, upcoming := partitionShows([]repository.VenueShowRow{rowAt(now)}, startOf, now)

	assert.Empty(t, past)
	require.Len(t, upcoming, 1)
	assert.Equal(t, now, upcoming[0].StartTime)
}

func TestPartitionShowsCoversAllInput(t *testing.T) {
	now := time.Now()
	shows := make([]repository.VenueShowRow, 0, 20)
	for i := -10; i < 10; i++ {
		shows = append(shows, rowAt(now.Add(time.Duration(i)*time.Hour)))
	}

	past, upcoming := partitionShows(shows, startOf, now)

	assert.Equal(t, len(shows), len(past)+len(upcoming))
	for _, s := range past {
		assert.True(t, s.StartTime.Before(now))
	}
	for _, s := range upcoming {
		assert.False(t, s.StartTime.Before(now))
	}
}

func TestPartitionShowsEmptyInput(t *testing.T) {
	past, upcoming := partitionShows(nil, startOf, time.Now())
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}
