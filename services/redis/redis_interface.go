package redis

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	redis_utils "Yatzler/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		Client: client,
		Ctx:    context.Background(),
	}
}

// SaveGameRoom stores a room's full ephemeral state in Redis
// Key format: "room:{code}:state"
// TTL: 24 hours, refreshed on every write
func (rc *RedisClient) SaveGameRoom(room *redis_models.GameRoom) error {
	key := redis_utils.FormatRoomKey(room.Code)
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room state: %v", err)
	}
	return rc.Client.Set(rc.Ctx, key, data, game_constants.RoomStateTTL).Err()
}

// GetGameRoom retrieves a room's ephemeral state from Redis
func (rc *RedisClient) GetGameRoom(roomCode string) (*redis_models.GameRoom, error) {
	key := redis_utils.FormatRoomKey(roomCode)
	data, err := rc.Client.Get(rc.Ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("room not found: %s", roomCode)
		}
		return nil, fmt.Errorf("error getting room state: %v", err)
	}

	var room redis_models.GameRoom
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("error unmarshaling room state: %v", err)
	}
	return &room, nil
}

// DeleteGameRoom removes a room's ephemeral state
func (rc *RedisClient) DeleteGameRoom(roomCode string) error {
	key := redis_utils.FormatRoomKey(roomCode)
	return rc.Client.Del(rc.Ctx, key).Err()
}

// RoomExists reports whether a room key is present without unmarshaling it
func (rc *RedisClient) RoomExists(roomCode string) (bool, error) {
	key := redis_utils.FormatRoomKey(roomCode)
	n, err := rc.Client.Exists(rc.Ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
