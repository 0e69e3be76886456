package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(42, 0)
	assert.Equal(t, 1, s.Stage)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 42, s.HighScore)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.IsGameOver || s.UsedAdContinue || s.HasShownAdPopup || s.IsAdShown)

	assert.Equal(t, 9, New(0, 9).Stage)
	assert.NotEqual(t, New(0, 0).ID, New(0, 0).ID)
}

func TestIsBossStage(t *testing.T) {
	for n := 1; n <= 100; n++ {
		assert.Equal(t, n%5 == 0, IsBossStage(n), "stage %d", n)
	}
}

func TestCountersNeverDecrease(t *testing.T) {
	s := New(0, 0)
	prevScore, prevStage := s.Score, s.Stage
	for _, delta := range []int{1, 0, -3, 2, -1, 5} {
		s.AddScore(delta)
		s.AdvanceStage()
		assert.GreaterOrEqual(t, s.Score, prevScore)
		assert.Greater(t, s.Stage, prevStage)
		prevScore, prevStage = s.Score, s.Stage
	}
	assert.Equal(t, 8, s.Score)
}

func TestCommitHighScore(t *testing.T) {
	cases := []struct {
		name     string
		score    int
		high     int
		wantBest bool
		wantHigh int
	}{
		{"beats record", 12, 10, true, 12},
		{"ties record", 10, 10, true, 10},
		{"below record", 9, 10, false, 10},
		{"first game", 0, 0, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.high, 0)
			s.Score = tc.score
			assert.Equal(t, tc.wantBest, s.CommitHighScore())
			assert.Equal(t, tc.wantHigh, s.HighScore)
		})
	}
}
