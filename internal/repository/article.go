package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkpad/internal/models"
)

// ErrNotFound — статья с таким id отсутствует.
var ErrNotFound = errors.New("статья не найдена")

type ArticleRepo interface {
	Create(ctx context.Context, title, content string, props []models.PropertyInput) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Article, error)
	UpdateFields(ctx context.Context, id int64, title, content *string) (*models.Article, error)
	ReplaceProperties(ctx context.Context, articleID int64, props []models.PropertyInput) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

// Create вставляет статью и её начальные свойства одной транзакцией:
// частично созданная статья (без свойств) не должна быть видна.
func (r *articleRepo) Create(ctx context.Context, title, content string, props []models.PropertyInput) (*models.Article, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO articles (title, content, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, title, content, created_at, updated_at
	`

	var a models.Article
	if err := tx.QueryRow(ctx, q, title, content).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Properties, err = insertProperties(ctx, tx, a.ID, props)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &a, nil
}

// insertProperties — bulk-вставка свойств в переданной последовательности.
// Имена не проверяются на уникальность: дубликаты сохраняются как есть.
func insertProperties(ctx context.Context, tx pgx.Tx, articleID int64, props []models.PropertyInput) ([]models.Property, error) {
	out := make([]models.Property, 0, len(props))

	const q = `
		INSERT INTO article_properties (article_id, property_name, property_value, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, article_id, property_name, property_value, created_at
	`
	for _, in := range props {
		var p models.Property
		if err := tx.QueryRow(ctx, q, articleID, in.Name, in.Value).Scan(
			&p.ID, &p.ArticleID, &p.Name, &p.Value, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	const q = `
		SELECT id, title, content, created_at, updated_at
		FROM articles
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanArticles(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachProperties(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	const q = `
		SELECT id, title, content, created_at, updated_at
		FROM articles WHERE id = $1
	`
	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	list := []*models.Article{&a}
	if err := r.attachProperties(ctx, list); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByIDs возвращает статьи из набора в порядке возрастания id.
// Несуществующие id молча пропускаются — вызывающий сам решает,
// что делать с неполным результатом.
func (r *articleRepo) GetByIDs(ctx context.Context, ids []int64) ([]*models.Article, error) {
	if len(ids) == 0 {
		return []*models.Article{}, nil
	}

	const q = `
		SELECT id, title, content, created_at, updated_at
		FROM articles
		WHERE id = ANY($1)
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanArticles(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachProperties(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateFields меняет только переданные поля; updated_at обновляется всегда,
// даже если ни title, ни content не заданы.
func (r *articleRepo) UpdateFields(ctx context.Context, id int64, title, content *string) (*models.Article, error) {
	set := "updated_at = NOW()"
	args := []interface{}{id}
	i := 2

	if title != nil {
		set += fmt.Sprintf(", title = $%d", i)
		args = append(args, *title)
		i++
	}
	if content != nil {
		set += fmt.Sprintf(", content = $%d", i)
		args = append(args, *content)
		i++
	}

	q := fmt.Sprintf(`
		UPDATE articles SET %s
		WHERE id = $1
		RETURNING id, title, content, created_at, updated_at
	`, set)

	var a models.Article
	if err := r.db.QueryRow(ctx, q, args...).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ReplaceProperties атомарно заменяет весь набор свойств статьи.
// Удаление и вставка идут в одной транзакции: параллельные замены
// не могут перемешать свои половины. Пустой набор очищает свойства.
func (r *articleRepo) ReplaceProperties(ctx context.Context, articleID int64, props []models.PropertyInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM article_properties WHERE article_id = $1`, articleID); err != nil {
		return err
	}
	if _, err := insertProperties(ctx, tx, articleID, props); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete удаляет статью; свойства снимает каскад на уровне БД
// (article_properties.article_id ON DELETE CASCADE).
func (r *articleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanArticles(rows pgx.Rows) ([]*models.Article, error) {
	list := []*models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// attachProperties одним запросом подтягивает свойства для всех статей списка.
// У статьи без свойств остаётся пустой срез, не nil.
func (r *articleRepo) attachProperties(ctx context.Context, list []*models.Article) error {
	ids := make([]int64, 0, len(list))
	byID := make(map[int64]*models.Article, len(list))
	for _, a := range list {
		a.Properties = []models.Property{}
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}
	if len(ids) == 0 {
		return nil
	}

	const q = `
		SELECT id, article_id, property_name, property_value, created_at
		FROM article_properties
		WHERE article_id = ANY($1)
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.ArticleID, &p.Name, &p.Value, &p.CreatedAt); err != nil {
			return err
		}
		if a, ok := byID[p.ArticleID]; ok {
			a.Properties = append(a.Properties, p)
		}
	}
	return rows.Err()
}
