package game_flow

import "sync"

// One room is a single logical actor: every command (roll/score/skip/quit)
// runs under that room's mutex, bot sequences included, while different
// rooms proceed fully in parallel. No cross-room locking exists anywhere.
var roomLocks = struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}{locks: make(map[string]*sync.Mutex)}

func lockRoom(code string) func() {
	roomLocks.mu.Lock()
	l, ok := roomLocks.locks[code]
	if !ok {
		l = &sync.Mutex{}
		roomLocks.locks[code] = l
	}
	roomLocks.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// releaseRoomLock drops the per-room mutex entry once a room is gone.
func releaseRoomLock(code string) {
	roomLocks.mu.Lock()
	delete(roomLocks.locks, code)
	roomLocks.mu.Unlock()
}
