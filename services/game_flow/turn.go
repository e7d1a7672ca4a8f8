package game_flow

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RollOutcome is the synchronous reply to a roll command.
type RollOutcome struct {
	Dice      []int                    `json:"dice"`
	RollCount int                      `json:"roll_count"`
	Available map[yahtzee.Category]int `json:"available_categories"`
	Version   int64                    `json:"version"`
}

// ScoreOutcome is the synchronous reply to a score (or skip) command. When
// the command triggered bot turns or finished the game, those results ride
// along so the caller can replay them at its own pace.
type ScoreOutcome struct {
	PlayerIndex     int              `json:"player_index"`
	Category        yahtzee.Category `json:"category"`
	Score           int              `json:"score"`
	NextPlayerIndex int              `json:"next_player_index"`
	Round           int              `json:"round"`
	GameFinished    bool             `json:"game_finished"`
	BotTurns        []BotTurn        `json:"bot_turns"`
	Final           *FinalResult     `json:"final,omitempty"`
	Version         int64            `json:"version"`
}

// applyRoll is the AwaitingRoll -> Rolling transition. Pure over the room
// struct; the caller owns locking and persistence.
func applyRoll(room *redis_models.GameRoom, playerIndex int, held []bool) (*RollOutcome, *APIError) {
	if room.Status != redis_models.StatusPlaying {
		return nil, ErrGameNotInProgress
	}
	if playerIndex != room.CurrentTurnIndex {
		return nil, ErrNotYourTurn
	}
	if room.RollCount >= game_constants.MaxRollsPerTurn {
		return nil, ErrMaxRollsReached
	}

	if room.RollCount == 0 {
		// First roll of a turn regenerates all five dice; the held mask
		// only applies to rerolls
		room.Dice = yahtzee.Roll()
		room.Held = make([]bool, yahtzee.NumDice)
	} else {
		mask := make([]bool, yahtzee.NumDice)
		for i := 0; i < yahtzee.NumDice && i < len(held); i++ {
			mask[i] = held[i]
		}
		room.Dice = yahtzee.Reroll(room.Dice, mask)
		room.Held = mask
	}
	room.RollCount++
	room.Bump()

	player := room.PlayerByIndex(playerIndex)
	return &RollOutcome{
		Dice:      room.Dice,
		RollCount: room.RollCount,
		Available: yahtzee.AvailableScores(room.Dice, player.Scorecard),
		Version:   room.Version,
	}, nil
}

// applyScore fills a scorecard slot, ending the turn. Scratching (choosing a
// category worth 0) is legal; a filled slot never changes again.
func applyScore(room *redis_models.GameRoom, playerIndex int, category yahtzee.Category) (int, *APIError) {
	if room.Status != redis_models.StatusPlaying {
		return 0, ErrGameNotInProgress
	}
	if playerIndex != room.CurrentTurnIndex {
		return 0, ErrNotYourTurn
	}
	if !yahtzee.IsValidCategory(category) {
		return 0, ErrUnknownCategory
	}
	if room.RollCount < 1 {
		return 0, ErrMustRollFirst
	}
	player := room.PlayerByIndex(playerIndex)
	if player.Scorecard.Filled(category) {
		return 0, ErrCategoryFilled
	}

	score := yahtzee.Score(room.Dice, category)
	player.Scorecard[category] = score
	room.Bump()
	return score, nil
}

// SubmitRoll handles a player's roll command end to end: serialize on the
// room, validate ownership, roll, persist, broadcast.
func SubmitRoll(rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, playerID string, held []bool) (*RollOutcome, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	player := room.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	outcome, apiErr := applyRoll(room, player.PlayerIndex, held)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, fmt.Errorf("error saving room state: %v", err)
	}

	emitToRoom(sio, code, "dice_roll", gin.H{
		"player_index":         player.PlayerIndex,
		"dice":                 outcome.Dice,
		"roll_count":           outcome.RollCount,
		"available_categories": outcome.Available,
		"version":              outcome.Version,
	})
	log.Printf("[ROLL] Player %s rolled %v in room %s (roll %d)",
		player.Name, outcome.Dice, code, outcome.RollCount)
	return outcome, nil
}

// SubmitScore handles a player's category choice: fill the slot, advance the
// turn, play any consecutive bot turns inside the same critical section, and
// finish the game when the last slot closes.
func SubmitScore(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, playerID string, category yahtzee.Category) (*ScoreOutcome, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	player := room.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	score, apiErr := applyScore(room, player.PlayerIndex, category)
	if apiErr != nil {
		return nil, apiErr
	}
	log.Printf("[SCORE] Player %s scored %d on %s in room %s",
		player.Name, score, category, code)

	progress, err := progressLocked(db, rc, sio, room, &scoreEvent{
		PlayerIndex: player.PlayerIndex,
		Category:    category,
		Score:       score,
	})
	if err != nil {
		return nil, err
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, fmt.Errorf("error saving room state: %v", err)
	}

	return &ScoreOutcome{
		PlayerIndex:     player.PlayerIndex,
		Category:        category,
		Score:           score,
		NextPlayerIndex: progress.NextPlayerIndex,
		Round:           progress.Round,
		GameFinished:    progress.Finished,
		BotTurns:        progress.BotTurns,
		Final:           progress.Final,
		Version:         room.Version,
	}, nil
}
