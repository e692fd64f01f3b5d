package repo

import (
	"time"

	llmHandlers "bot9-palace-backend/internal/llm_handlers"
	"bot9-palace-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepo struct {
	db *gorm.DB
}

type ConversationRepoInterface interface {
	AppendUserTurn(sessionKey string, content string, seed []string) error
	AppendAssistantTurn(sessionKey string, content string) error
	GetHistory(sessionKey string) ([]llmHandlers.Message, error)
	ListTurns(sessionKey string, page int, pageSize int) ([]models.ConversationTurn, int64, error)
}

func NewConversationRepository(db *gorm.DB) ConversationRepoInterface {
	return &ConversationRepo{db: db}
}

// AppendUserTurn creates the session on first use, seeding the fixed system
// instructions exactly once, and appends the user message. The whole sequence
// runs in one transaction with the session row locked, so concurrent calls for
// the same key serialize instead of losing turns.
func (r *ConversationRepo) AppendUserTurn(sessionKey string, content string, seed []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoNothing: true,
		}).Create(&models.Session{
			UUID:       uuid.New(),
			SessionKey: sessionKey,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}
		created := res.RowsAffected == 1

		var session models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_key = ?", sessionKey).
			First(&session).Error; err != nil {
			return err
		}

		seq := session.TurnCount
		if created {
			for _, prompt := range seed {
				seq++
				if err := tx.Create(&models.ConversationTurn{
					UUID:       uuid.New(),
					SessionKey: sessionKey,
					Content:    prompt,
					Role:       models.RoleSystem,
					Seq:        seq,
					CreatedAt:  time.Now(),
				}).Error; err != nil {
					return err
				}
			}
		}

		seq++
		if err := tx.Create(&models.ConversationTurn{
			UUID:       uuid.New(),
			SessionKey: sessionKey,
			Content:    content,
			Role:       models.RoleUser,
			Seq:        seq,
			CreatedAt:  time.Now(),
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Session{}).
			Where("session_key = ?", sessionKey).
			Updates(map[string]interface{}{"turn_count": seq, "updated_at": time.Now()}).Error
	})
}

func (r *ConversationRepo) AppendAssistantTurn(sessionKey string, content string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_key = ?", sessionKey).
			First(&session).Error; err != nil {
			return err
		}

		seq := session.TurnCount + 1
		if err := tx.Create(&models.ConversationTurn{
			UUID:       uuid.New(),
			SessionKey: sessionKey,
			Content:    content,
			Role:       models.RoleAssistant,
			Seq:        seq,
			CreatedAt:  time.Now(),
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Session{}).
			Where("session_key = ?", sessionKey).
			Updates(map[string]interface{}{"turn_count": seq, "updated_at": time.Now()}).Error
	})
}

// GetHistory returns every turn of the session in order, shaped for the LLM
// client.
func (r *ConversationRepo) GetHistory(sessionKey string) ([]llmHandlers.Message, error) {
	var turns []models.ConversationTurn
	err := r.db.Model(&models.ConversationTurn{}).
		Where("session_key = ?", sessionKey).
		Select("role", "content").
		Order("seq ASC").
		Find(&turns).Error
	if err != nil {
		return nil, err
	}

	history := []llmHandlers.Message{}
	for _, turn := range turns {
		history = append(history, llmHandlers.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	return history, nil
}

// signature returns turns, totalCount, error
func (r *ConversationRepo) ListTurns(sessionKey string, page int, pageSize int) ([]models.ConversationTurn, int64, error) {
	var turns []models.ConversationTurn
	var total int64

	// sane defaults + cap
	if page < 1 {
		page = 1
	}
	const DefaultPageSize = 20
	const MaxPageSize = 100
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize

	base := r.db.Model(&models.ConversationTurn{}).Where("session_key = ?", sessionKey)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("seq ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&turns).Error; err != nil {
		return nil, 0, err
	}

	return turns, total, nil
}
