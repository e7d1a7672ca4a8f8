package game_flow

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"
	gamesync "Yatzler/sync"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BotTurn is one complete computer turn, returned in order so the UI layer
// can replay the sequence with its own pacing.
type BotTurn struct {
	PlayerIndex int              `json:"player_index"`
	Round       int              `json:"round"`
	Dice        []int            `json:"dice"`
	RollCount   int              `json:"roll_count"`
	Category    yahtzee.Category `json:"category"`
	Score       int              `json:"score"`
}

// FinalResult carries the persisted outcome of a finished game.
type FinalResult struct {
	Scores      []gamesync.PlayerResult `json:"scores"`
	WinnerIndex int                     `json:"winner"`
}

type scoreEvent struct {
	PlayerIndex int
	Category    yahtzee.Category
	Score       int
}

type progressResult struct {
	BotTurns        []BotTurn
	Final           *FinalResult
	NextPlayerIndex int
	Round           int
	Finished        bool
}

// progressLocked drives the room forward after a turn ended: announce the
// score (if any), advance to the next active player, run every consecutive
// bot turn, and finish the game when all scorecards are complete or the
// round counter would pass the last round. Runs entirely inside the caller's
// critical section so nothing can interleave mid-bot-sequence.
func progressLocked(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	room *redis_models.GameRoom, pending *scoreEvent) (*progressResult, error) {

	res := &progressResult{BotTurns: []BotTurn{}}
	first := true

	for {
		finished := allActiveComplete(room)
		if !finished {
			advanceTurnLocked(room)
			if room.CurrentRound > game_constants.TotalRounds {
				finished = true
			}
		}

		if pending != nil {
			emitToRoom(sio, room.Code, "score_update", gin.H{
				"player_index":      pending.PlayerIndex,
				"category":          pending.Category,
				"score":             pending.Score,
				"next_player_index": room.CurrentTurnIndex,
				"round":             room.CurrentRound,
				"game_finished":     finished,
				"version":           room.Version,
			})
		}
		if first {
			res.NextPlayerIndex = room.CurrentTurnIndex
			res.Round = room.CurrentRound
			first = false
		}

		if finished {
			final, err := finishGameLocked(db, sio, room)
			if err != nil {
				return nil, err
			}
			res.Final = final
			res.Finished = true
			return res, nil
		}

		current := room.CurrentPlayer()
		if current == nil || !current.IsBot {
			// The turn can land on a player who is already offline; arm
			// the same grace timer a live disconnect would
			if current != nil && !current.IsConnected && !current.HasLeft && rc != nil {
				deadline := time.Now().Add(game_constants.TurnGracePeriod)
				room.TurnTimeout = deadline
				go watchTurnTimeout(db, rc, sio, room.Code, current.ID, deadline)
			}
			return res, nil
		}

		turn := playBotTurnLocked(sio, room, current)
		res.BotTurns = append(res.BotTurns, turn)
		pending = &scoreEvent{
			PlayerIndex: turn.PlayerIndex,
			Category:    turn.Category,
			Score:       turn.Score,
		}
	}
}

// advanceTurnLocked hands the turn to the next player still in the rotation.
// The round increments exactly once per full cycle, on index wrap-around.
func advanceTurnLocked(room *redis_models.GameRoom) {
	n := len(room.Players)
	from := room.CurrentTurnIndex
	next := from
	for i := 1; i <= n; i++ {
		candidate := (from + i) % n
		p := room.PlayerByIndex(candidate)
		if p != nil && !p.HasLeft {
			next = candidate
			break
		}
	}
	if next <= from {
		room.CurrentRound++
	}
	room.CurrentTurnIndex = next
	room.ResetTurn()
	room.TurnTimeout = time.Time{}
	room.Bump()
}

// playBotTurnLocked runs one full bot turn: roll, reroll while the heuristic
// wants to, then fill the chosen category. Dice rolls are broadcast in order.
func playBotTurnLocked(sio *socketio_types.SocketServer, room *redis_models.GameRoom,
	bot *redis_models.RoomPlayer) BotTurn {

	room.Dice = yahtzee.Roll()
	room.Held = make([]bool, yahtzee.NumDice)
	room.RollCount = 1
	room.Bump()
	emitBotRoll(sio, room, bot)

	for yahtzee.ShouldReroll(room.Dice, bot.Scorecard, room.RollCount, game_constants.MaxRollsPerTurn) {
		room.Held = yahtzee.HoldPattern(room.Dice, bot.Scorecard)
		room.Dice = yahtzee.Reroll(room.Dice, room.Held)
		room.RollCount++
		room.Bump()
		emitBotRoll(sio, room, bot)
	}

	category, _ := yahtzee.BestCategory(room.Dice, bot.Scorecard)
	score := yahtzee.Score(room.Dice, category)
	bot.Scorecard[category] = score
	room.Bump()

	log.Printf("[BOT-TURN] %s rolled %v and scored %d on %s in room %s",
		bot.Name, room.Dice, score, category, room.Code)

	return BotTurn{
		PlayerIndex: bot.PlayerIndex,
		Round:       room.CurrentRound,
		Dice:        append([]int{}, room.Dice...),
		RollCount:   room.RollCount,
		Category:    category,
		Score:       score,
	}
}

func emitBotRoll(sio *socketio_types.SocketServer, room *redis_models.GameRoom, bot *redis_models.RoomPlayer) {
	emitToRoom(sio, room.Code, "dice_roll", gin.H{
		"player_index":         bot.PlayerIndex,
		"dice":                 room.Dice,
		"roll_count":           room.RollCount,
		"available_categories": yahtzee.AvailableScores(room.Dice, bot.Scorecard),
		"version":              room.Version,
	})
}

func allActiveComplete(room *redis_models.GameRoom) bool {
	active := room.ActivePlayers()
	if len(active) == 0 {
		return true
	}
	for _, p := range active {
		if !p.Scorecard.IsComplete() {
			return false
		}
	}
	return true
}

// computeFinalResult totals every scorecard (open slots contribute 0, also
// for players who left mid-game) and flags the winner: highest grand total
// among players still in the rotation, ties broken by lowest player index.
func computeFinalResult(room *redis_models.GameRoom) *FinalResult {
	results := make([]gamesync.PlayerResult, 0, len(room.Players))
	winnerIndex := -1
	best := -1
	for _, p := range room.Players {
		t := yahtzee.ComputeTotals(p.Scorecard)
		results = append(results, gamesync.PlayerResult{
			PlayerID:    p.ID,
			PlayerIndex: p.PlayerIndex,
			Name:        p.Name,
			Totals:      t,
			Scorecard:   p.Scorecard.Clone(),
		})
		if !p.HasLeft && t.GrandTotal > best {
			best = t.GrandTotal
			winnerIndex = p.PlayerIndex
		}
	}
	for i := range results {
		results[i].Winner = results[i].PlayerIndex == winnerIndex
	}
	return &FinalResult{Scores: results, WinnerIndex: winnerIndex}
}

// finishGameLocked closes the room: compute totals, persist the write-once
// score rows (retried, never re-scored), clear the ephemeral turn state and
// broadcast game_end.
func finishGameLocked(db *gorm.DB, sio *socketio_types.SocketServer,
	room *redis_models.GameRoom) (*FinalResult, error) {

	final := computeFinalResult(room)
	now := time.Now()

	room.Status = redis_models.StatusFinished
	room.FinishedAt = now
	room.ExpiresAt = now.Add(game_constants.RoomExpiry)
	room.TurnTimeout = time.Time{}
	room.ResetTurn()
	room.Bump()

	if db != nil {
		sm := gamesync.NewSyncManager(db)
		if err := sm.PersistGameResultWithRetry(room.Code, now, final.Scores); err != nil {
			log.Printf("[GAME-END-ERROR] Could not persist results for room %s: %v", room.Code, err)
		}
	}

	emitToRoom(sio, room.Code, "game_end", gin.H{
		"scores":  final.Scores,
		"winner":  final.WinnerIndex,
		"version": room.Version,
	})
	log.Printf("[GAME-END] Room %s finished, winner index %d", room.Code, final.WinnerIndex)
	return final, nil
}
