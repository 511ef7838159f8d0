package qrcodes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	tokenRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/qrtoken"
	sessionRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/session"
)

// IssuedToken выпущенный QR-токен чек-ина
// Рендеринг самого QR-изображения остаётся за клиентом - сервис
// отдаёт токен и URL, которые в него зашиваются
type IssuedToken struct {
	Token     string
	SessionID int64
	ExpiresAt time.Time
	URL       string
}

// Service сервис QR-токенов чек-ина
type Service struct {
	sessions SessionRepository
	tokens   TokenRepository
	baseURL  string
	ttl      time.Duration
	logger   Logger
}

// NewService создает новый сервис QR-токенов
func NewService(sessions SessionRepository, tokens TokenRepository, baseURL string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		sessions: sessions,
		tokens:   tokens,
		baseURL:  baseURL,
		ttl:      ttl,
		logger:   logger,
	}
}

// Issue выпускает токен чек-ина для сессии
// Обычный клиент может получить QR только своей сессии;
// сотрудники и администраторы - любой
func (s *Service) Issue(ctx context.Context, actor domain.Actor, sessionID int64) (*IssuedToken, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Issue: session id=%d not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Issue: repository error for session id=%d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Issue - repository error: %v", ErrInternal, err)
	}

	if actor.Role == domain.RoleUser && sess.UserID != actor.ID {
		s.logger.Warn("Issue: access denied for user=%d to session id=%d", actor.ID, sessionID)
		return nil, ErrAccessDenied
	}

	return s.IssueForSession(ctx, sessionID)
}

// IssueForSession выпускает токен без проверки прав
// Используется воркером доставки уведомлений, у которого нет актора
func (s *Service) IssueForSession(ctx context.Context, sessionID int64) (*IssuedToken, error) {
	token := &domain.QRToken{
		Token:     uuid.NewString(),
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.tokens.Insert(ctx, token); err != nil {
		s.logger.Error("IssueForSession: failed to insert token for session id=%d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: IssueForSession - failed to insert token: %v", ErrInternal, err)
	}

	s.logger.Info("IssueForSession: issued token for session id=%d", sessionID)

	return &IssuedToken{
		Token:     token.Token,
		SessionID: sessionID,
		ExpiresAt: token.ExpiresAt,
		URL:       fmt.Sprintf("%s/api/v1/qr/access/%s", s.baseURL, token.Token),
	}, nil
}

// Resolve проверяет токен чек-ина и возвращает ID сессии
// Валидный токен помечается использованным
func (s *Service) Resolve(ctx context.Context, token string) (int64, error) {
	qr, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			s.logger.Warn("Resolve: token not found")
			return 0, ErrTokenNotFound
		}
		s.logger.Error("Resolve: repository error: %v", err)
		return 0, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if qr.Used {
		s.logger.Warn("Resolve: token for session id=%d already used", qr.SessionID)
		return 0, ErrTokenUsed
	}

	if qr.IsExpired(time.Now()) {
		s.logger.Warn("Resolve: token for session id=%d expired at %s", qr.SessionID, qr.ExpiresAt)
		return 0, ErrTokenExpired
	}

	if err := s.tokens.MarkUsed(ctx, token); err != nil {
		s.logger.Error("Resolve: failed to mark token used for session id=%d: %v", qr.SessionID, err)
		return 0, fmt.Errorf("%w: Resolve - failed to mark token used: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: token resolved to session id=%d", qr.SessionID)
	return qr.SessionID, nil
}
