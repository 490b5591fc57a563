package chat

import (
	"context"
	"errors"
	"time"

	infrarepo "github.com/agrosphere/backend/infra/repository"
	"github.com/agrosphere/backend/pkg/domain/chat"
	"github.com/agrosphere/backend/pkg/dto"
	chatrepo "github.com/agrosphere/backend/pkg/repository/chat"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) chatrepo.Repository {
	return &repository{db: db}
}

// FindByParticipants resolves the conversation holding exactly these two
// members via the participant rows.
func (r *repository) FindByParticipants(
	ctx context.Context,
	a, b uuid.UUID,
) (*dto.ConversationRead, error) {
	var conversationID uuid.UUID
	err := r.db.WithContext(ctx).
		Table("conversation_participants").
		Select("conversation_id").
		Where("user_id IN ?", []uuid.UUID{a, b}).
		Group("conversation_id").
		Having("COUNT(DISTINCT user_id) = 2").
		Limit(1).
		Scan(&conversationID).Error
	if err != nil {
		return nil, err
	}
	if conversationID == uuid.Nil {
		return nil, nil
	}
	return r.GetConversation(ctx, conversationID)
}

func (r *repository) CreateConversation(
	ctx context.Context,
	conv *chat.Conversation,
) error {
	model := &Conversation{
		ID:        conv.ID,
		PairKey:   conv.PairKey,
		CreatedAt: conv.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return infrarepo.MapGormErrorToDomain(err)
	}
	return nil
}

// AddParticipant inserts the membership row; re-adding an existing member
// is a no-op.
func (r *repository) AddParticipant(
	ctx context.Context,
	conversationID, userID uuid.UUID,
) error {
	p := &Participant{
		ConversationID: conversationID,
		UserID:         userID,
		JoinedAt:       time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p).Error
}

func (r *repository) IsParticipant(
	ctx context.Context,
	conversationID, userID uuid.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) GetConversation(
	ctx context.Context,
	id uuid.UUID,
) (*dto.ConversationRead, error) {
	var conv Conversation
	if err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var participants []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Participant{}).
		Where("conversation_id = ?", id).
		Order("joined_at ASC").
		Pluck("user_id", &participants).Error
	if err != nil {
		return nil, err
	}

	return &dto.ConversationRead{
		ID:            conv.ID,
		CreatedAt:     conv.CreatedAt,
		LastMessageAt: conv.LastMessageAt,
		Participants:  participants,
	}, nil
}

// CreateMessage inserts the message and bumps the conversation's
// last_message_at in the same session, so inside a UnitOfWork both writes
// commit or roll back together.
func (r *repository) CreateMessage(
	ctx context.Context,
	msg *chat.Message,
) error {
	model := &Message{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		Read:           msg.Read,
		CreatedAt:      msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ?", msg.ConversationID).
		Update("last_message_at", msg.CreatedAt).Error
}

const messageSelect = `m.id, m.conversation_id, m.sender_id, m.content,
	m.read, m.created_at,
	u.username AS sender_username, u.names AS sender_names`

func (r *repository) GetMessage(
	ctx context.Context,
	id uuid.UUID,
) (*dto.MessageRead, error) {
	var row dto.MessageRead
	err := r.db.WithContext(ctx).
		Table("messages m").
		Select(messageSelect).
		Joins("JOIN users u ON u.id = m.sender_id").
		Where("m.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) ListMessages(
	ctx context.Context,
	conversationID uuid.UUID,
	limit, offset int,
) ([]*dto.MessageRead, error) {
	var rows []*dto.MessageRead
	err := r.db.WithContext(ctx).
		Table("messages m").
		Select(messageSelect).
		Joins("JOIN users u ON u.id = m.sender_id").
		Where("m.conversation_id = ?", conversationID).
		Order("m.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MarkRead(
	ctx context.Context,
	conversationID, readerID uuid.UUID,
) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read = false",
			conversationID, readerID).
		Update("read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// summariesQuery resolves, per conversation of the user: the counterpart's
// display fields, the latest message, and how many incoming messages are
// still unread. Conversations with no messages sort last.
const summariesQuery = `
SELECT c.id, c.created_at, c.last_message_at,
       ou.id AS other_user_id, ou.username AS other_username, ou.names AS other_names,
       lm.content AS last_message_content,
       (SELECT COUNT(*) FROM messages m
         WHERE m.conversation_id = c.id AND m.sender_id <> ? AND m.read = false
       ) AS unread_count
FROM conversations c
JOIN conversation_participants me ON me.conversation_id = c.id AND me.user_id = ?
JOIN conversation_participants op ON op.conversation_id = c.id AND op.user_id <> ?
JOIN users ou ON ou.id = op.user_id
LEFT JOIN LATERAL (
    SELECT m.content FROM messages m
    WHERE m.conversation_id = c.id
    ORDER BY m.created_at DESC
    LIMIT 1
) lm ON true
ORDER BY c.last_message_at DESC NULLS LAST, c.created_at DESC
LIMIT ? OFFSET ?`

func (r *repository) ListSummaries(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*dto.ConversationSummary, error) {
	var rows []*dto.ConversationSummary
	err := r.db.WithContext(ctx).
		Raw(summariesQuery, userID, userID, userID, limit, offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var _ chatrepo.Repository = (*repository)(nil)
