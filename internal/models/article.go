package models

import "time"

type Article struct {
	ID         int64      `db:"id"         json:"id"`
	Title      string     `db:"title"      json:"title"`
	Content    string     `db:"content"    json:"content"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
	Properties []Property `db:"-"          json:"properties"`
}

// Property — произвольная пара ключ/значение статьи. Имя не уникально:
// одна статья может хранить несколько свойств с одинаковым именем.
type Property struct {
	ID        int64     `db:"id"             json:"id"`
	ArticleID int64     `db:"article_id"     json:"articleId"`
	Name      string    `db:"property_name"  json:"property_name"`
	Value     string    `db:"property_value" json:"property_value"`
	CreatedAt time.Time `db:"created_at"     json:"createdAt"`
}

type PropertyInput struct {
	Name  string `json:"property_name"  example:"Author"`
	Value string `json:"property_value" example:"John Doe"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title      string          `json:"title"   example:"Моя первая статья"`
	Content    string          `json:"content" example:"<p>Контент</p>"`
	Properties []PropertyInput `json:"properties"`
}

// swagger:model UpdateArticleRequest
// Поля-указатели: nil — «не трогать», непустое значение — «заменить».
// Properties = пустой массив — «очистить все свойства».
type UpdateArticleRequest struct {
	Title      *string          `json:"title,omitempty"`
	Content    *string          `json:"content,omitempty"`
	Properties *[]PropertyInput `json:"properties,omitempty"`
}

type DeleteArticleResponse struct {
	Success bool `json:"success"`
}

// swagger:model ExportRequest
type ExportRequest struct {
	Format     string  `json:"format"      example:"html"` // html|pdf
	ArticleIDs []int64 `json:"article_ids,omitempty"`
}

type ExportResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}
