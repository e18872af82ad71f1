package handler

import "time"

// partitionShows splits show rows into past and upcoming relative to
// now. A show starting at exactly now counts as upcoming; the boundary
// is inclusive on the upcoming side. Input order is preserved within
// each bucket, and every row lands in exactly one of them. The split is
// recomputed on every call so detail pages always reflect the current
// instant; nothing here is cached or denormalized.
func partitionShows[T any](shows []T, startTime func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(shows))
	upcoming = make([]T, 0, len(shows))
	for _, s := range shows {
		if startTime(s).Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}
