package game_flow

import "net/http"

// APIError is a per-room, caller-visible rejection. Nothing here is fatal to
// the process: the room state is left unchanged and the code is reported back
// to the offending caller.
type APIError struct {
	Code    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	// Validation
	ErrInvalidName     = &APIError{"INVALID_NAME", http.StatusBadRequest, "display name must be between 1 and 20 characters"}
	ErrUnknownCategory = &APIError{"UNKNOWN_CATEGORY", http.StatusBadRequest, "unknown scoring category"}

	// Capacity / lifecycle
	ErrRoomNotFound   = &APIError{"ROOM_NOT_FOUND", http.StatusNotFound, "room not found"}
	ErrPlayerNotFound = &APIError{"PLAYER_NOT_FOUND", http.StatusNotFound, "player not found in room"}
	ErrGameStarted    = &APIError{"GAME_STARTED", http.StatusConflict, "the game has already started"}
	ErrRoomFull       = &APIError{"ROOM_FULL", http.StatusConflict, "the room is full"}
	ErrNotHost        = &APIError{"NOT_HOST", http.StatusForbidden, "only the host can do that"}
	ErrNotEnoughPlayers  = &APIError{"NOT_ENOUGH_PLAYERS", http.StatusConflict, "at least 2 players are needed to start"}
	ErrGameNotInProgress = &APIError{"GAME_NOT_IN_PROGRESS", http.StatusConflict, "the game is not in progress"}

	// Turn ownership
	ErrNotYourTurn     = &APIError{"NOT_YOUR_TURN", http.StatusConflict, "it is not your turn"}
	ErrMaxRollsReached = &APIError{"MAX_ROLLS_REACHED", http.StatusConflict, "no rolls left this turn"}
	ErrMustRollFirst   = &APIError{"MUST_ROLL_FIRST", http.StatusConflict, "you must roll at least once before scoring"}
	ErrCategoryFilled  = &APIError{"CATEGORY_FILLED", http.StatusConflict, "that category is already filled"}
)
