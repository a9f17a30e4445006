package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmatch/internal/match/catalog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		industry string
		expected catalog.Track
		matched  bool
	}{
		{"backend role", "Senior Backend Engineer", "Technology", catalog.TrackBackend, true},
		{"frontend role", "React Developer", "Software", catalog.TrackFrontend, true},
		{"devops role", "Site Reliability Engineer", "Cloud", catalog.TrackDevOps, true},
		{"industry supplies the signal", "Engineer", "backend services", catalog.TrackBackend, true},
		{"unknown role", "Astro Falconry Instructor", "", catalog.TrackBackend, false},
		{"empty input", "", "", catalog.TrackBackend, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, score := Classify(tt.role, tt.industry)
			if tt.matched {
				assert.Equal(t, tt.expected, track)
				assert.Greater(t, score, 0)
			} else {
				assert.Equal(t, 0, score, "no keyword may match")
			}
		})
	}
}

func TestClassify_TieBreaksToEarlierTrack(t *testing.T) {
	// One keyword hit each for backend and frontend; backend is declared
	// first and must win.
	track, score := Classify("backend and react work", "")

	assert.Equal(t, catalog.TrackBackend, track)
	assert.Equal(t, 1, score)
}
