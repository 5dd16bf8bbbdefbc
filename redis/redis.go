package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"clinicdesk/models"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const (
	backupKey   = "clinicdesk:backup"
	settingsKey = "clinicdesk:settings"
)

// InitRedis connects when REDIS_ADDR is set. The mirror and settings
// helpers become no-ops without a client; the dashboard works without Redis.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, backup mirror disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// MirrorBackup writes the full export bundle under a fixed key. Called on
// every explicit save as the parallel key-value backup.
func MirrorBackup(b *models.Backup) error {
	if Client == nil {
		return nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, backupKey, raw, 0).Err()
}

// LoadBackupMirror returns the last mirrored bundle, or nil when none exists.
func LoadBackupMirror() (*models.Backup, error) {
	if Client == nil {
		return nil, nil
	}
	raw, err := Client.Get(Ctx, backupKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var b models.Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func SaveSettings(s models.Settings) error {
	if Client == nil {
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, settingsKey, raw, 0).Err()
}

// LoadSettings returns the stored preferences, or ok=false when none exist.
func LoadSettings() (models.Settings, bool, error) {
	var s models.Settings
	if Client == nil {
		return s, false, nil
	}
	raw, err := Client.Get(Ctx, settingsKey).Bytes()
	if err == redis.Nil {
		return s, false, nil
	}
	if err != nil {
		return s, false, err
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, false, err
	}
	return s, true, nil
}
