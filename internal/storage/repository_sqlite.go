package storage

import (
	"time"

	"github.com/DADGADD/Venus/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByID(id uint) (*game.Session, error) {
	var s game.Session
	err := r.db.
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("seat ASC") }).
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("id DESC") }).
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	// The feed is capped in memory; old rows are pruned on update, so this
	// trim only matters for sessions written by older binaries.
	if len(s.Logs) > game.LogCap {
		s.Logs = s.Logs[:game.LogCap]
	}
	return &s, nil
}

func (r *sqliteRepository) FindSessionByJoinCode(code string) (*game.Session, error) {
	var s game.Session
	if err := r.db.Where("join_code = ?", code).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error; err != nil {
		return err
	}
	return r.pruneLogs(s.ID)
}

// pruneLogs deletes feed rows beyond the newest LogCap for a session.
func (r *sqliteRepository) pruneLogs(sessionID uint) error {
	keep := r.db.Model(&game.LogEntry{}).
		Select("id").
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(game.LogCap)
	return r.db.
		Where("session_id = ? AND id NOT IN (?)", sessionID, keep).
		Delete(&game.LogEntry{}).Error
}

func (r *sqliteRepository) ClaimDueAutoTurns(now time.Time, limit int) ([]AutoTurnClaim, error) {
	var claims []AutoTurnClaim
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var due []game.Session
		if err := tx.
			Where("phase = ? AND auto_advance_at IS NOT NULL AND auto_advance_at <= ?", game.PhasePlaying, now).
			Order("auto_advance_at ASC").
			Limit(limit).
			Find(&due).Error; err != nil {
			return err
		}
		for _, s := range due {
			if err := tx.Model(&game.Session{}).
				Where("id = ?", s.ID).
				Update("auto_advance_at", nil).Error; err != nil {
				return err
			}
			claims = append(claims, AutoTurnClaim{SessionID: s.ID, TurnSerial: s.TurnSerial})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *sqliteRepository) UpdateStatsOnSessionEnd(s *game.Session) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range s.Players {
			var prof game.CorpProfile
			if err := tx.Where("name = ?", s.Players[i].Name).
				FirstOrCreate(&prof, game.CorpProfile{Name: s.Players[i].Name}).Error; err != nil {
				return err
			}
			prof.GamesPlayed++
			if s.Winner != "" && s.Players[i].Name == s.Winner {
				prof.Wins++
			}
			if err := tx.Save(&prof).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) GetTopCorporations(limit int) ([]game.CorpProfile, error) {
	var profiles []game.CorpProfile
	if err := r.db.Order("wins DESC, games_played DESC").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
