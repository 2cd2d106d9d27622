package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkpad/internal/config"
	"inkpad/internal/export"
	"inkpad/internal/logger"
	"inkpad/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBadExportFile — имя файла вне каталога экспорта.
var ErrBadExportFile = errors.New("недопустимое имя файла экспорта")

type ExportResult struct {
	Success     bool
	FileName    string
	DownloadURL string
}

type ExportService interface {
	Export(ctx context.Context, format string, articleIDs []int64) (*ExportResult, error)
	ResolveFile(name string) (string, error)
}

type exportService struct {
	articles ArticleService
	dir      string
	siteURL  string
}

func NewExportService(articles ArticleService, cfg *config.Config) ExportService {
	return &exportService{
		articles: articles,
		dir:      cfg.ExportDir,
		siteURL:  strings.TrimRight(cfg.SiteURL, "/"),
	}
}

// Export собирает выбранные статьи в один документ и кладёт его в каталог
// экспорта. Пустой выбор — мягкий отказ: Success=false без ошибки.
// Формат pdf намеренно отдаёт тот же HTML с печатными стилями: настоящая
// растеризация — забота внешнего рендера, не этого сервиса.
func (s *exportService) Export(ctx context.Context, format string, articleIDs []int64) (*ExportResult, error) {
	log := logger.WithCtx(ctx)

	f, err := export.ParseFormat(format)
	if err != nil {
		log.Warn("Экспорт: неизвестный формат", zap.String("format", format))
		return nil, err
	}

	articles, err := s.resolve(ctx, articleIDs)
	if err != nil {
		log.Error("Экспорт: ошибка выборки статей", zap.Error(err))
		return nil, err
	}

	if len(articleIDs) > 0 && len(articles) < len(articleIDs) {
		log.Warn("Экспорт: часть запрошенных id не найдена",
			zap.Int("requested", len(articleIDs)),
			zap.Int("resolved", len(articles)),
		)
	}

	if len(articles) == 0 {
		log.Warn("Экспорт: пустой набор статей, документ не создан")
		return &ExportResult{Success: false}, nil
	}

	doc := export.Render(articles, f)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("каталог экспорта: %w", err)
	}

	name := fmt.Sprintf("articles-%s-%s.html",
		time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		log.Error("Экспорт: ошибка записи файла", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("запись файла экспорта: %w", err)
	}

	log.Info("Экспорт готов",
		zap.String("file", name),
		zap.String("format", string(f)),
		zap.Int("articles", len(articles)),
	)

	return &ExportResult{
		Success:     true,
		FileName:    name,
		DownloadURL: s.siteURL + "/api/exports/" + name,
	}, nil
}

func (s *exportService) resolve(ctx context.Context, ids []int64) ([]*models.Article, error) {
	if len(ids) == 0 {
		return s.articles.GetAll(ctx)
	}
	return s.articles.GetByIDs(ctx, ids)
}

// ResolveFile отдаёт путь к ранее созданному файлу экспорта.
// Имя с разделителями пути отклоняется — наружу смотрит только сам каталог.
func (s *exportService) ResolveFile(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrBadExportFile
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
