// Package export собирает из статей самодостаточный HTML-документ
// с оглавлением. Никакого I/O: чистое преобразование данных в строку.
package export

import (
	"fmt"
	"strings"

	"inkpad/internal/models"
)

type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf" // печатный вариант; та же разметка + print-CSS
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("неизвестный формат экспорта: %q", s)
	}
}

// escaper — именованные character-references для пользовательского текста.
// html.EscapeString не подходит: он даёт &#34; вместо &quot;.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func Escape(s string) string { return escaper.Replace(s) }

const timeLayout = "02.01.2006 15:04"

// Render строит документ: оглавление со ссылками-якорями, затем секция
// на каждую статью в порядке переданного набора. Заголовки и свойства
// экранируются; content вставляется как есть — это доверенная разметка
// редактора, а не произвольный пользовательский текст.
func Render(articles []*models.Article, format Format) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Экспорт статей</title>
<style>%s</style>
</head>
<body>
`, styleFor(format)))

	// Оглавление
	b.WriteString("<nav class=\"toc\">\n<h1>Содержание</h1>\n<ol>\n")
	for _, a := range articles {
		b.WriteString(fmt.Sprintf("  <li><a href=\"#article-%d\">%s</a></li>\n", a.ID, Escape(a.Title)))
	}
	b.WriteString("</ol>\n</nav>\n")

	for _, a := range articles {
		b.WriteString(renderArticle(a))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderArticle(a *models.Article) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(`<section class="article" id="article-%d">
<h2>%s</h2>
<p class="meta">Создано: %s · Обновлено: %s</p>
`, a.ID, Escape(a.Title), a.CreatedAt.Format(timeLayout), a.UpdatedAt.Format(timeLayout)))

	if len(a.Properties) > 0 {
		b.WriteString("<table class=\"properties\">\n")
		for _, p := range a.Properties {
			// Свойство с пустым значением тоже выводится — подстановка
			// заглушки «/» остаётся на совести UI, не экспорта.
			b.WriteString(fmt.Sprintf("  <tr><td>%s</td><td>%s</td></tr>\n", Escape(p.Name), Escape(p.Value)))
		}
		b.WriteString("</table>\n")
	}

	b.WriteString(fmt.Sprintf("<div class=\"content\">%s</div>\n</section>\n", a.Content))
	return b.String()
}

func styleFor(format Format) string {
	const base = `
body{font-family:Arial,sans-serif;max-width:800px;margin:0 auto;padding:24px;color:#222;}
.toc{border-bottom:1px solid #eee;margin-bottom:32px;}
.toc a{color:#2d74da;text-decoration:none;}
.article{margin-bottom:48px;}
.article h2{color:#2d74da;margin-bottom:4px;}
.meta{font-size:12px;color:#999;margin-top:0;}
.properties{border-collapse:collapse;margin:12px 0;}
.properties td{border:1px solid #eee;padding:4px 12px;font-size:14px;}
`
	if format == FormatPDF {
		return base + `
@media print{.article{page-break-after:always;}.toc a{color:#222;}}
@page{margin:2cm;}
`
	}
	return base
}
