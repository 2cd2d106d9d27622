package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inkpad/internal/logger"
	"inkpad/internal/models"
	"inkpad/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// ErrEmptyTitle — заголовок обязателен при создании и при явной замене.
var ErrEmptyTitle = errors.New("заголовок статьи не может быть пустым")

type ArticleService interface {
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Article, error)
	Update(ctx context.Context, id int64, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id int64) (bool, error)
	PreviewHTML(rawHTML string) string
}

type articleService struct {
	repo   repository.ArticleRepo
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, policy: p}
}

// PreviewHTML чистит сырой HTML редактора для панели предпросмотра.
// В базу результат не попадает: сохранённый content не модифицируется.
func (s *articleService) PreviewHTML(rawHTML string) string {
	log := logger.WithCtx(context.Background())
	clean := s.policy.Sanitize(rawHTML)
	log.Debug("Предпросмотр HTML (sanitize)",
		zap.Int("raw_len", len(rawHTML)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Int("props_count", len(req.Properties)),
	)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		log.Warn("Валидация не пройдена: пустой заголовок", zap.Error(ErrEmptyTitle))
		return nil, ErrEmptyTitle
	}

	created, err := s.repo.Create(ctx, title, req.Content, req.Properties)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, fmt.Errorf("создание статьи: %w", err)
	}

	log.Info("Статья создана",
		zap.Int64("id", created.ID),
		zap.Int("props_count", len(created.Properties)),
	)
	return created, nil
}

func (s *articleService) GetAll(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

// GetByID возвращает (nil, nil) для несуществующего id: отсутствие —
// не ошибка, вызывающий различает «нет статьи» и сбой хранилища.
func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Debug("Статья не найдена", zap.Int64("id", id))
			return nil, nil
		}
		log.Error("Ошибка получения статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (s *articleService) GetByIDs(ctx context.Context, ids []int64) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		log.Error("Ошибка получения статей по списку id (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Update: nil-поле — «не трогать», непустой указатель — «заменить».
// Properties с непустым указателем (в том числе на пустой массив) —
// полная замена набора; updated_at обновляется при любом исходе.
func (s *articleService) Update(ctx context.Context, id int64, req models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи",
		zap.Int64("id", id),
		zap.Bool("title", req.Title != nil),
		zap.Bool("content", req.Content != nil),
		zap.Bool("properties", req.Properties != nil),
	)

	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			log.Warn("Валидация не пройдена: пустой заголовок", zap.Int64("id", id))
			return nil, ErrEmptyTitle
		}
		req.Title = &t
	}

	a, err := s.repo.UpdateFields(ctx, id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Статья для обновления не найдена", zap.Int64("id", id))
			return nil, err
		}
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("обновление статьи: %w", err)
	}

	if req.Properties != nil {
		if err := s.repo.ReplaceProperties(ctx, id, *req.Properties); err != nil {
			log.Error("Ошибка замены свойств (repo)", zap.Int64("id", id), zap.Error(err))
			return nil, fmt.Errorf("замена свойств: %w", err)
		}
	}

	// Перечитываем: вид статьи всегда текущий полный набор свойств.
	out, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		log.Error("Ошибка чтения статьи после обновления (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статья обновлена", zap.Int64("id", id))
	return out, nil
}

// Delete возвращает false без ошибки, если статьи не было:
// повторное удаление — не сбой. Свойства снимает каскад.
func (s *articleService) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.Int64("id", id))

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return false, err
	}

	if !ok {
		log.Warn("Статья для удаления не найдена", zap.Int64("id", id))
	} else {
		log.Info("Статья удалена", zap.Int64("id", id))
	}
	return ok, nil
}
