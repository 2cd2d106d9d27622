package services

import (
	"context"
	"testing"
	"time"

	"inkpad/internal/models"
	"inkpad/internal/repository"
)

// Мок-репозиторий (заглушка). Часы тикают на каждую запись,
// чтобы updated_at рос строго монотонно.
type mockArticleRepo struct {
	articles map[int64]*models.Article
	props    map[int64][]models.Property
	nextID   int64
	nextPID  int64
	tick     int64
	base     time.Time
}

func newMockRepo() *mockArticleRepo {
	return &mockArticleRepo{
		articles: make(map[int64]*models.Article),
		props:    make(map[int64][]models.Property),
		base:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockArticleRepo) now() time.Time {
	m.tick++
	return m.base.Add(time.Duration(m.tick) * time.Millisecond)
}

func (m *mockArticleRepo) Create(_ context.Context, title, content string, props []models.PropertyInput) (*models.Article, error) {
	m.nextID++
	now := m.now()
	a := &models.Article{ID: m.nextID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	m.articles[a.ID] = a
	m.insert(a.ID, props)
	return m.copyOf(a.ID), nil
}

func (m *mockArticleRepo) insert(articleID int64, props []models.PropertyInput) {
	for _, in := range props {
		m.nextPID++
		m.props[articleID] = append(m.props[articleID], models.Property{
			ID: m.nextPID, ArticleID: articleID, Name: in.Name, Value: in.Value, CreatedAt: m.now(),
		})
	}
}

func (m *mockArticleRepo) copyOf(id int64) *models.Article {
	a, ok := m.articles[id]
	if !ok {
		return nil
	}
	out := *a
	out.Properties = append([]models.Property{}, m.props[id]...)
	return &out
}

func (m *mockArticleRepo) GetAll(_ context.Context) ([]*models.Article, error) {
	list := []*models.Article{}
	for id := int64(1); id <= m.nextID; id++ {
		if a := m.copyOf(id); a != nil {
			list = append(list, a)
		}
	}
	return list, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a := m.copyOf(id)
	if a == nil {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *mockArticleRepo) GetByIDs(_ context.Context, ids []int64) ([]*models.Article, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	list := []*models.Article{}
	for id := int64(1); id <= m.nextID; id++ {
		if want[id] {
			if a := m.copyOf(id); a != nil {
				list = append(list, a)
			}
		}
	}
	return list, nil
}

func (m *mockArticleRepo) UpdateFields(_ context.Context, id int64, title, content *string) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if title != nil {
		a.Title = *title
	}
	if content != nil {
		a.Content = *content
	}
	a.UpdatedAt = m.now()
	return m.copyOf(id), nil
}

func (m *mockArticleRepo) ReplaceProperties(_ context.Context, articleID int64, props []models.PropertyInput) error {
	m.props[articleID] = nil
	m.insert(articleID, props)
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.articles[id]; !ok {
		return false, nil
	}
	delete(m.articles, id)
	delete(m.props, id)
	return true, nil
}

func TestCreateArticle_WithProperties(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Первая статья",
		Content: "<p>текст</p>",
		Properties: []models.PropertyInput{
			{Name: "Author", Value: "John Doe"},
			{Name: "Category", Value: "Technology"},
			{Name: "Author", Value: "Jane Smith"}, // дубликат имени допустим
		},
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ошибка чтения: %v", err)
	}
	if got == nil {
		t.Fatal("статья не найдена после создания")
	}
	if len(got.Properties) != 3 {
		t.Fatalf("ожидалось 3 свойства, получено %d", len(got.Properties))
	}
	if got.Properties[0].Name != "Author" || got.Properties[0].Value != "John Doe" {
		t.Fatalf("порядок свойств нарушен: %+v", got.Properties[0])
	}
	if got.Properties[2].Name != "Author" || got.Properties[2].Value != "Jane Smith" {
		t.Fatal("дубликат имени свойства не сохранился")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Fatal("updated_at раньше created_at")
	}
}

func TestCreateArticle_EmptyTitle(t *testing.T) {
	svc := NewArticleService(newMockRepo())

	_, err := svc.Create(context.Background(), models.CreateArticleRequest{Title: "   "})
	if err != ErrEmptyTitle {
		t.Fatalf("ожидалась ErrEmptyTitle, получено: %v", err)
	}
}

func TestUpdateArticle_TitleOnly(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Заголовок",
		Content:    "<p>не трогать</p>",
		Properties: []models.PropertyInput{{Name: "Author", Value: "John Doe"}},
	})

	title := "X"
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Title: &title})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}

	if updated.Title != "X" {
		t.Fatalf("заголовок не обновился: %q", updated.Title)
	}
	if updated.Content != created.Content {
		t.Fatal("content изменился при обновлении только заголовка")
	}
	if len(updated.Properties) != 1 || updated.Properties[0].Value != "John Doe" {
		t.Fatal("свойства изменились при обновлении только заголовка")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updated_at не вырос")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at изменился")
	}
}

func TestUpdateArticle_ClearProperties(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Со свойствами",
		Properties: []models.PropertyInput{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}},
	})

	empty := []models.PropertyInput{}
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Properties: &empty})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if len(updated.Properties) != 0 {
		t.Fatalf("свойства не очищены: %+v", updated.Properties)
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if len(got.Properties) != 0 {
		t.Fatal("свойства остались в хранилище после очистки")
	}
}

func TestUpdateArticle_ReplaceProperties(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Замена",
		Properties: []models.PropertyInput{{Name: "Old", Value: "1"}},
	})

	replacement := []models.PropertyInput{{Name: "New", Value: "a"}, {Name: "New", Value: "b"}}
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Properties: &replacement})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if len(updated.Properties) != 2 || updated.Properties[0].Name != "New" {
		t.Fatalf("набор свойств не заменён: %+v", updated.Properties)
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	svc := NewArticleService(newMockRepo())

	title := "X"
	_, err := svc.Update(context.Background(), 999, models.UpdateArticleRequest{Title: &title})
	if err == nil {
		t.Fatal("ожидалась ошибка при обновлении несуществующей статьи")
	}
	if err != repository.ErrNotFound {
		t.Fatalf("ожидалась ErrNotFound, получено: %v", err)
	}
}

func TestUpdateArticle_EmptyTitleRejected(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	created, _ := svc.Create(context.Background(), models.CreateArticleRequest{Title: "Есть"})

	empty := ""
	_, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Title: &empty})
	if err != ErrEmptyTitle {
		t.Fatalf("ожидалась ErrEmptyTitle, получено: %v", err)
	}
}

func TestDeleteArticle(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	first, _ := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Удаляемая",
		Properties: []models.PropertyInput{{Name: "Author", Value: "John Doe"}},
	})
	second, _ := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Соседняя",
		Properties: []models.PropertyInput{{Name: "Author", Value: "Jane Smith"}},
	})

	ok, err := svc.Delete(context.Background(), first.ID)
	if err != nil || !ok {
		t.Fatalf("удаление не удалось: ok=%v err=%v", ok, err)
	}

	if got, _ := svc.GetByID(context.Background(), first.ID); got != nil {
		t.Fatal("статья осталась после удаления")
	}
	if len(repo.props[first.ID]) != 0 {
		t.Fatal("свойства удалённой статьи остались")
	}

	// Соседняя статья и её свойства не тронуты
	other, _ := svc.GetByID(context.Background(), second.ID)
	if other == nil || len(other.Properties) != 1 {
		t.Fatal("каскад зацепил чужие свойства")
	}

	// Повторное удаление — success=false, не ошибка
	ok, err = svc.Delete(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("повторное удаление вернуло ошибку: %v", err)
	}
	if ok {
		t.Fatal("ожидалось success=false для несуществующего id")
	}
}

func TestGetByID_Absent(t *testing.T) {
	svc := NewArticleService(newMockRepo())

	got, err := svc.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("отсутствие статьи не должно быть ошибкой: %v", err)
	}
	if got != nil {
		t.Fatal("ожидался nil для несуществующего id")
	}
}

func TestGetAll_EmptyPropertiesNotNil(t *testing.T) {
	repo := newMockRepo()
	svc := NewArticleService(repo)

	_, _ = svc.Create(context.Background(), models.CreateArticleRequest{Title: "Без свойств"})

	list, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ожидалась 1 статья, получено %d", len(list))
	}
	if list[0].Properties == nil {
		t.Fatal("properties должен быть пустым срезом, не nil")
	}
}

func TestPreviewHTML_StripsScript(t *testing.T) {
	svc := NewArticleService(newMockRepo())

	out := svc.PreviewHTML(`<p>ок</p><script>alert(1)</script>`)
	if out != "<p>ок</p>" {
		t.Fatalf("script не вырезан: %q", out)
	}
}
