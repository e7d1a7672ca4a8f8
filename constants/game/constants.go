package game_constants

import "time"

const MinPlayers = 2
const MaxPlayers = 4
const MaxRollsPerTurn = 3
const TotalRounds = 13
const MaxNameLength = 20

// Grace period before a disconnected current-turn player is auto-skipped
const TurnGracePeriod = 30 * time.Second

// How long a room survives in Redis after its last write
const RoomStateTTL = 24 * time.Hour

// How long finished or abandoned rooms keep their ephemeral state around
const RoomExpiry = 30 * time.Minute

// How often the expiry sweeper runs
const CleanupInterval = 5 * time.Minute

const BotNamePrefix = "Yatzbot"
