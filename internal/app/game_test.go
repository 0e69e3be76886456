package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/storage"
	"go-knife-hit/internal/system"
)

func TestStartGameStagesOneKnife(t *testing.T) {
	f := newFixture(testLibrary(90, 3), 0)
	f.game.StartGame()
	f.step(0.05)

	require.NotNil(t, f.game.Sequencer.Current())
	assert.Equal(t, system.KnifeStaged, f.game.Knives.Phase())
	assert.Equal(t, 1, f.game.Knives.Spawned())

	h := f.game.HUD()
	assert.Equal(t, "0", h.Score)
	assert.Equal(t, "STAGE 1", h.StageLabel)
	assert.Equal(t, 3, h.KnivesTotal)
	assert.Equal(t, 0, h.KnivesUsed)
	assert.Nil(t, h.AdPanel)
	assert.Nil(t, h.GameOverPanel)
}

func TestClearingTargetAdvancesStage(t *testing.T) {
	f := newFixture(testLibrary(90, 3), 0)
	f.game.StartGame()
	f.step(0.05)

	for i := 0; i < 3; i++ {
		require.True(t, f.throw(), "throw %d", i)
	}
	assert.Equal(t, 3, f.game.Session.Score)
	assert.Equal(t, 2, f.game.Session.Stage)
	assert.Equal(t, 3, f.log.count(event.KnifeStuck))
	assert.True(t, f.sound.playedAny(config.SfxTargetDone))

	f.step(0.5)
	assert.Equal(t, system.SeqPlaying, f.game.Sequencer.Phase())
	assert.Equal(t, system.KnifeStaged, f.game.Knives.Phase())
	assert.Equal(t, 1, f.game.Knives.Spawned(), "the knife budget restarts with the new target")

	h := f.game.HUD()
	assert.Equal(t, "STAGE 2", h.StageLabel)
	assert.True(t, h.StageIcons[1].Active)
	assert.False(t, h.StageIcons[2].Active)
}

func TestNoMoreKnivesThanTheTargetNeeds(t *testing.T) {
	f := newFixture(testLibrary(90, 2), 0)
	f.game.StartGame()
	f.step(0.05)

	require.True(t, f.game.Tap())
	f.step(0.2)
	require.True(t, f.game.Tap())
	f.step(0.05)
	assert.Nil(t, f.game.Knives.Staged(), "both knives are already out")
	assert.Equal(t, 2, f.game.Knives.Spawned())
	assert.False(t, f.game.Tap())
}

func collide(t *testing.T, f *fixture) {
	t.Helper()
	f.game.StartGame()
	f.step(0.05)
	require.True(t, f.throw())
	require.True(t, f.throw())
	require.True(t, f.game.Session.IsGameOver)
}

func TestKnivesInAirDuringCollisionAreRefunded(t *testing.T) {
	f := newFixture(testLibrary(0, 5), 0)
	f.game.StartGame()
	f.step(0.05)
	require.True(t, f.throw())

	// Два ножа в воздухе: второй брошен, пока первый ещё летит
	require.True(t, f.game.Tap())
	f.step(0.1)
	require.True(t, f.game.Tap())
	f.step(0.3)

	require.True(t, f.game.Session.IsGameOver)
	target := f.game.Sequencer.Current()
	require.Len(t, target.HitKnives, 1)
	h := f.game.HUD()
	assert.Equal(t, 2, h.KnivesUsed, "the knife that never reached the target is not spent")

	f.game.AcceptAd()
	f.ads.grant()
	f.step(0.05)
	require.False(t, f.game.Session.IsGameOver)

	h = f.game.HUD()
	assert.Equal(t, target.Remaining(), h.KnivesTotal-h.KnivesUsed)

	target.Speed = 3
	left := target.Remaining()
	require.Equal(t, 4, left)
	for i := 0; i < left; i++ {
		require.True(t, f.throw(), "throw %d", i)
	}
	assert.False(t, f.game.Session.IsGameOver)
	assert.Equal(t, 2, f.game.Session.Stage, "the target can still be cleared after the continue")
}

func TestCollisionOffersAdThenLapses(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	collide(t, f)

	assert.Equal(t, 1, f.log.count(event.KnifeCollided))
	assert.Equal(t, 1, f.log.count(event.AdOffered))
	assert.True(t, f.sound.timerPlaying)
	assert.False(t, f.game.Tap(), "no throwing while the game is over")

	h := f.game.HUD()
	require.NotNil(t, h.AdPanel)
	assert.Equal(t, "1", h.AdPanel.Score)
	assert.InDelta(t, 1.0, h.AdPanel.Fill, 0.05)
	assert.Nil(t, h.GameOverPanel)

	f.step(config.AdCountdownDuration + 0.2)

	assert.Equal(t, system.GateLapsed, f.game.Gate.Phase())
	assert.Equal(t, 1, f.log.count(event.AdLapsed))
	assert.False(t, f.sound.timerPlaying)
	assert.True(t, f.game.GameOverShown())

	h = f.game.HUD()
	assert.Nil(t, h.AdPanel)
	require.NotNil(t, h.GameOverPanel)
	assert.Equal(t, "Stage 1", h.GameOverPanel.Stage)
	assert.True(t, h.GameOverPanel.NewBest)

	best, err := f.store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 1, best)
	require.Len(t, f.store.Plays(), 1)
	assert.False(t, f.store.Plays()[0].UsedAd)
}

func TestAdRewardContinuesOnSameTarget(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	collide(t, f)

	f.game.AcceptAd()
	require.Len(t, f.ads.requests, 1)
	assert.Equal(t, f.game.Session.ID.String(), f.ads.requests[0])
	assert.True(t, f.game.HUD().AdPanel.Waiting)

	f.ads.grant()
	f.step(0.05)

	assert.Equal(t, system.GateRedeemed, f.game.Gate.Phase())
	assert.False(t, f.game.Session.IsGameOver)
	assert.True(t, f.game.Session.UsedAdContinue)
	assert.False(t, f.sound.timerPlaying)
	assert.Equal(t, system.KnifeStaged, f.game.Knives.Phase())
	assert.Equal(t, 2, f.game.Knives.Spawned(), "the lost knife is refunded")
	assert.Equal(t, 1, f.game.HUD().KnivesUsed)

	// Второй проигрыш — рекламы больше нет, сразу итоги
	require.True(t, f.throw())
	assert.True(t, f.game.Session.IsGameOver)
	assert.True(t, f.game.GameOverShown())
	assert.Equal(t, 1, f.log.count(event.AdOffered))
	assert.Equal(t, 1, f.sound.timerStarts)
	require.Len(t, f.store.Plays(), 1)
	assert.True(t, f.store.Plays()[0].UsedAd)
}

func TestLateRewardAfterLapseIsIgnored(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	collide(t, f)

	f.game.AcceptAd()
	f.step(config.AdCountdownDuration + 0.2)
	require.True(t, f.game.GameOverShown())

	f.ads.grant()
	f.step(0.05)
	assert.True(t, f.game.Session.IsGameOver)
	assert.Equal(t, system.GateLapsed, f.game.Gate.Phase())
	assert.Zero(t, f.log.count(event.AdRedeemed))
}

func TestStaleAdResultIsIgnored(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	collide(t, f)

	f.game.AcceptAd()
	f.ads.results = append(f.ads.results, adResultFor(f, false))
	f.step(0.05)
	assert.True(t, f.game.Gate.Active())
	assert.True(t, f.game.Session.IsGameOver)
}

func TestAdUnavailableKeepsCountingDown(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	f.ads.err = errNoFill
	collide(t, f)

	f.game.AcceptAd()
	assert.Equal(t, 1, f.log.count(event.AdUnavailable))
	assert.True(t, f.game.Gate.Active())

	f.step(config.AdCountdownDuration + 0.2)
	assert.True(t, f.game.GameOverShown())
}

func TestSkipAdShowsGameOver(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	collide(t, f)

	f.game.SkipAd()
	assert.True(t, f.game.GameOverShown())
	assert.False(t, f.sound.timerPlaying)
	assert.Equal(t, 1, f.log.count(event.AdLapsed))
}

func TestHighScoreOnlyWhenBeaten(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	require.NoError(t, f.store.SaveHighScore(10))
	collide(t, f)
	f.game.SkipAd()

	h := f.game.HUD()
	require.NotNil(t, h.GameOverPanel)
	assert.False(t, h.GameOverPanel.NewBest)
	assert.Zero(t, f.log.count(event.NewBestScore))

	best, err := f.store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 10, best)
}

func TestBossStageBlocksThrowsDuringBanner(t *testing.T) {
	f := newFixture(defs.Default(), 5)
	f.game.StartGame()

	assert.Equal(t, system.SeqBossIntro, f.game.Sequencer.Phase())
	assert.False(t, f.game.Tap())
	assert.True(t, f.sound.playedAny(config.BossFightStartSounds...))

	h := f.game.HUD()
	assert.Equal(t, "BOSS FIGHT!", h.Banner)
	assert.Contains(t, h.StageLabel, "Boss : ")
	assert.Equal(t, config.StageIconActiveColor, h.StageColor)

	f.step(config.BossBannerDuration + 0.1)
	assert.Equal(t, system.SeqPlaying, f.game.Sequencer.Phase())
	assert.True(t, f.game.Sequencer.Current().IsBoss())
	assert.True(t, f.game.Tap())
}

func TestSoundToggleIsRemembered(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)

	assert.False(t, f.game.ToggleSound())
	v, ok, err := f.store.Preference(storage.PrefSound)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	f.game.StartGame()
	f.step(0.05)
	f.game.Tap()
	assert.Empty(t, f.sound.played)
}

func TestNavigation(t *testing.T) {
	f := newFixture(testLibrary(0, 3), 0)
	f.game.Restart()
	f.game.BackToHome()
	assert.Equal(t, []string{config.GameSceneName, config.HomeSceneName}, f.nav.scenes)
	assert.Equal(t, 2, f.sound.buttons)
}

func TestSetLibraryAppliesToNextTarget(t *testing.T) {
	f := newFixture(testLibrary(90, 1), 0)
	f.game.StartGame()
	f.step(0.05)

	f.game.SetLibrary(testLibrary(45, 4))
	assert.Equal(t, 1, f.game.Sequencer.Current().TotalKnife)

	require.True(t, f.throw())
	f.step(0.5)
	assert.Equal(t, 4, f.game.Sequencer.Current().TotalKnife)
}

func TestStageStrip(t *testing.T) {
	tests := []struct {
		stage  int
		label  string
		active []bool
	}{
		{1, "STAGE 1", []bool{true, false, false, false, false}},
		{4, "STAGE 4", []bool{true, true, true, true, false}},
		{6, "STAGE 6", []bool{true, false, false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			label, c, icons := StageStrip(tt.stage, "", config.StageIconCount)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, config.StageIconNormalColor, c)
			for i, icon := range icons {
				assert.True(t, icon.Visible)
				assert.Equal(t, tt.active[i], icon.Active, "icon %d", i)
			}
		})
	}

	t.Run("boss", func(t *testing.T) {
		label, c, icons := StageStrip(10, "Sushi", config.StageIconCount)
		assert.Equal(t, "Boss : Sushi", label)
		assert.Equal(t, config.StageIconActiveColor, c)
		for i := 0; i < len(icons)-1; i++ {
			assert.False(t, icons[i].Visible)
		}
		assert.Equal(t, StageIcon{Visible: true, Active: true}, icons[len(icons)-1])
	})
}
