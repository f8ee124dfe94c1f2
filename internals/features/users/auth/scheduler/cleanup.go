package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"contaspagar_backend/internals/configs"
	authModel "contaspagar_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler remove da blacklist tokens já expirados.
// Roda em background a cada 24h.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	ttlDays := 7
	if raw := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS", "7"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		cleanup := func() {
			cutoff := time.Now().AddDate(0, 0, -ttlDays)
			res := db.Unscoped().
				Where("expired_at < ?", cutoff).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Limpeza da blacklist falhou:", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] 🧹 Blacklist: %d tokens expirados removidos", res.RowsAffected)
			}
		}

		cleanup()
		for range ticker.C {
			cleanup()
		}
	}()
}
