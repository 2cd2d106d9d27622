package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkpad/internal/config"
	"inkpad/internal/models"
)

func exportFixture(t *testing.T) (ArticleService, ExportService, *models.Article, *models.Article) {
	t.Helper()

	articles := NewArticleService(newMockRepo())
	cfg := &config.Config{ExportDir: t.TempDir(), SiteURL: "http://localhost:8080"}
	exports := NewExportService(articles, cfg)

	first, err := articles.Create(context.Background(), models.CreateArticleRequest{
		Title:   "First Article",
		Content: "<p>первый текст</p>",
		Properties: []models.PropertyInput{
			{Name: "Author", Value: "John Doe"},
			{Name: "Category", Value: "Technology"},
		},
	})
	if err != nil {
		t.Fatalf("фикстура: %v", err)
	}

	second, err := articles.Create(context.Background(), models.CreateArticleRequest{
		Title:      "Second Article",
		Content:    "<p>второй текст</p>",
		Properties: []models.PropertyInput{{Name: "Author", Value: "Jane Smith"}},
	})
	if err != nil {
		t.Fatalf("фикстура: %v", err)
	}

	return articles, exports, first, second
}

func readExport(t *testing.T, svc ExportService, res *ExportResult) string {
	t.Helper()
	path, err := svc.ResolveFile(res.FileName)
	if err != nil {
		t.Fatalf("файл экспорта не найден: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("файл экспорта не прочитан: %v", err)
	}
	return string(data)
}

func TestExport_AllArticles(t *testing.T) {
	_, exports, _, _ := exportFixture(t)

	res, err := exports.Export(context.Background(), "html", nil)
	if err != nil {
		t.Fatalf("ошибка экспорта: %v", err)
	}
	if !res.Success {
		t.Fatal("ожидался success=true")
	}
	if !strings.HasPrefix(res.DownloadURL, "http://localhost:8080/api/exports/") {
		t.Fatalf("неожиданный downloadUrl: %q", res.DownloadURL)
	}

	doc := readExport(t, exports, res)
	for _, want := range []string{
		"First Article", "Second Article",
		"John Doe", "Technology", "Jane Smith",
		`href="#article-`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("в документе нет %q", want)
		}
	}
}

func TestExport_SelectedIDs(t *testing.T) {
	_, exports, first, _ := exportFixture(t)

	res, err := exports.Export(context.Background(), "html", []int64{first.ID})
	if err != nil {
		t.Fatalf("ошибка экспорта: %v", err)
	}
	if !res.Success {
		t.Fatal("ожидался success=true")
	}

	doc := readExport(t, exports, res)
	if !strings.Contains(doc, "First Article") {
		t.Fatal("выбранная статья отсутствует в документе")
	}
	if strings.Contains(doc, "Second Article") || strings.Contains(doc, "Jane Smith") {
		t.Fatal("в документ попала невыбранная статья")
	}
}

func TestExport_EmptySelection(t *testing.T) {
	articles := NewArticleService(newMockRepo())
	exports := NewExportService(articles, &config.Config{ExportDir: t.TempDir()})

	// Статей нет вообще
	res, err := exports.Export(context.Background(), "html", nil)
	if err != nil {
		t.Fatalf("пустой набор не должен быть ошибкой: %v", err)
	}
	if res.Success {
		t.Fatal("ожидался success=false при пустой базе")
	}
	if res.DownloadURL != "" || res.FileName != "" {
		t.Fatal("документ не должен создаваться при пустом наборе")
	}
}

func TestExport_UnmatchedIDs(t *testing.T) {
	_, exports, _, _ := exportFixture(t)

	res, err := exports.Export(context.Background(), "html", []int64{777, 888})
	if err != nil {
		t.Fatalf("несовпавшие id не должны быть ошибкой: %v", err)
	}
	if res.Success {
		t.Fatal("ожидался success=false, когда ни один id не найден")
	}
}

func TestExport_PDFDegradesToPrintableHTML(t *testing.T) {
	_, exports, _, _ := exportFixture(t)

	res, err := exports.Export(context.Background(), "pdf", nil)
	if err != nil {
		t.Fatalf("ошибка экспорта: %v", err)
	}
	if !res.Success {
		t.Fatal("ожидался success=true")
	}
	if !strings.HasSuffix(res.FileName, ".html") {
		t.Fatalf("pdf-формат должен выдавать html-файл, получено %q", res.FileName)
	}

	doc := readExport(t, exports, res)
	if !strings.Contains(doc, "@media print") {
		t.Fatal("в печатном варианте нет print-стилей")
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, exports, _, _ := exportFixture(t)

	if _, err := exports.Export(context.Background(), "docx", nil); err == nil {
		t.Fatal("ожидалась ошибка для неизвестного формата")
	}
}

func TestResolveFile_RejectsTraversal(t *testing.T) {
	articles := NewArticleService(newMockRepo())
	exports := NewExportService(articles, &config.Config{ExportDir: t.TempDir()})

	for _, name := range []string{"", "../secret", filepath.Join("a", "b"), ".hidden"} {
		if _, err := exports.ResolveFile(name); err == nil {
			t.Fatalf("имя %q должно отклоняться", name)
		}
	}
}
