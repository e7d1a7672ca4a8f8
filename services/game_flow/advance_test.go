package game_flow

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	"Yatzler/services/yahtzee"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCard(card yahtzee.Scorecard, value int) {
	for _, c := range yahtzee.Categories {
		card[c] = value
	}
}

func TestAdvanceTurnRotates(t *testing.T) {
	room := testRoom(3)
	advanceTurnLocked(room)
	assert.Equal(t, 1, room.CurrentTurnIndex)
	assert.Equal(t, 1, room.CurrentRound)
	assert.Equal(t, 0, room.RollCount)
}

func TestAdvanceTurnSkipsDepartedPlayers(t *testing.T) {
	room := testRoom(3)
	room.Players[1].HasLeft = true
	advanceTurnLocked(room)
	assert.Equal(t, 2, room.CurrentTurnIndex)
}

func TestAdvanceTurnWrapIncrementsRound(t *testing.T) {
	room := testRoom(3)
	room.CurrentTurnIndex = 2
	advanceTurnLocked(room)
	assert.Equal(t, 0, room.CurrentTurnIndex)
	assert.Equal(t, 2, room.CurrentRound)
}

func TestAdvanceTurnResetsDiceState(t *testing.T) {
	room := testRoom(2)
	room.Dice = []int{1, 2, 3, 4, 5}
	room.RollCount = 2
	advanceTurnLocked(room)
	assert.Equal(t, 0, room.RollCount)
}

func TestProgressStopsAtHumanTurn(t *testing.T) {
	room := testRoom(2)
	progress, err := progressLocked(nil, nil, nil, room, nil)
	require.NoError(t, err)
	assert.False(t, progress.Finished)
	assert.Equal(t, 1, progress.NextPlayerIndex)
	assert.Empty(t, progress.BotTurns)
}

func TestProgressPlaysConsecutiveBotTurns(t *testing.T) {
	room := testRoom(3)
	room.Players[1].IsBot = true
	room.Players[2].IsBot = true

	progress, err := progressLocked(nil, nil, nil, room, nil)
	require.NoError(t, err)
	assert.False(t, progress.Finished)
	require.Len(t, progress.BotTurns, 2)
	assert.Equal(t, 1, progress.BotTurns[0].PlayerIndex)
	assert.Equal(t, 2, progress.BotTurns[1].PlayerIndex)
	// Each bot filled exactly one slot
	assert.Len(t, room.Players[1].Scorecard, 1)
	assert.Len(t, room.Players[2].Scorecard, 1)
	// Back at the human with the round advanced
	assert.Equal(t, 0, room.CurrentTurnIndex)
	assert.Equal(t, 2, room.CurrentRound)
}

func TestProgressFinishesWhenAllCardsComplete(t *testing.T) {
	room := testRoom(2)
	fillCard(room.Players[0].Scorecard, 10)
	fillCard(room.Players[1].Scorecard, 5)

	progress, err := progressLocked(nil, nil, nil, room, nil)
	require.NoError(t, err)
	assert.True(t, progress.Finished)
	require.NotNil(t, progress.Final)
	assert.Equal(t, 0, progress.Final.WinnerIndex)
	assert.Equal(t, redis_models.StatusFinished, room.Status)
	assert.False(t, room.FinishedAt.IsZero())
}

func TestProgressFinishesAfterLastRound(t *testing.T) {
	room := testRoom(2)
	room.CurrentRound = game_constants.TotalRounds
	room.CurrentTurnIndex = 1

	progress, err := progressLocked(nil, nil, nil, room, nil)
	require.NoError(t, err)
	assert.True(t, progress.Finished)
	assert.Equal(t, redis_models.StatusFinished, room.Status)
}

func TestBotGamePlaysToCompletion(t *testing.T) {
	room := testRoom(2)
	room.Players[1].IsBot = true
	fillCard(room.Players[0].Scorecard, 0)
	room.Players[0].HasLeft = true
	room.CurrentTurnIndex = 0

	progress, err := progressLocked(nil, nil, nil, room, nil)
	require.NoError(t, err)
	assert.True(t, progress.Finished)
	assert.True(t, room.Players[1].Scorecard.IsComplete())
	assert.Equal(t, len(yahtzee.Categories), len(progress.BotTurns))
}

func TestComputeFinalResultTieGoesToLowestIndex(t *testing.T) {
	room := testRoom(3)
	fillCard(room.Players[0].Scorecard, 4)
	fillCard(room.Players[1].Scorecard, 4)
	fillCard(room.Players[2].Scorecard, 3)

	final := computeFinalResult(room)
	assert.Equal(t, 0, final.WinnerIndex)
	assert.True(t, final.Scores[0].Winner)
	assert.False(t, final.Scores[1].Winner)
}

func TestComputeFinalResultExcludesQuitters(t *testing.T) {
	room := testRoom(2)
	fillCard(room.Players[0].Scorecard, 10)
	fillCard(room.Players[1].Scorecard, 5)
	room.Players[0].HasLeft = true

	final := computeFinalResult(room)
	assert.Equal(t, 1, final.WinnerIndex)
	// The quitter's totals are still reported
	require.Len(t, final.Scores, 2)
	assert.Greater(t, final.Scores[0].Totals.GrandTotal, final.Scores[1].Totals.GrandTotal)
	assert.False(t, final.Scores[0].Winner)
}

func TestAllActiveComplete(t *testing.T) {
	room := testRoom(2)
	assert.False(t, allActiveComplete(room))

	fillCard(room.Players[0].Scorecard, 1)
	assert.False(t, allActiveComplete(room))

	room.Players[1].HasLeft = true
	assert.True(t, allActiveComplete(room))
}

func TestCheapestOpenCategory(t *testing.T) {
	card := yahtzee.Scorecard{}
	assert.Equal(t, yahtzee.Ones, cheapestOpenCategory(card))

	card[yahtzee.Ones] = 0
	assert.Equal(t, yahtzee.Twos, cheapestOpenCategory(card))
}

func TestSkipWithoutRollScratchesCheapest(t *testing.T) {
	room := testRoom(2)
	outcome, err := skipLocked(nil, nil, nil, room, room.Players[0], "timeout")
	require.NoError(t, err)
	assert.Equal(t, yahtzee.Ones, outcome.Category)
	assert.Equal(t, 0, outcome.Score)
	assert.True(t, room.Players[0].Scorecard.Filled(yahtzee.Ones))
	assert.Equal(t, 1, outcome.NextPlayerIndex)
}

func TestSkipAfterRollBanksBestScore(t *testing.T) {
	room := testRoom(2)
	room.Dice = []int{6, 6, 6, 6, 6}
	room.RollCount = 1

	outcome, err := skipLocked(nil, nil, nil, room, room.Players[0], "host")
	require.NoError(t, err)
	assert.Equal(t, yahtzee.Yahtzee, outcome.Category)
	assert.Equal(t, 50, outcome.Score)
}
