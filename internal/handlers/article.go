package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkpad/internal/logger"
	"inkpad/internal/models"
	"inkpad/internal/repository"
	"inkpad/internal/services"
	helpers "inkpad/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create
// @Summary      Создать статью
// @Description  Создаёт статью с произвольным набором свойств (имена могут повторяться)
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body   models.CreateArticleRequest  true  "Данные статьи"
// @Success      201   {object}  models.Article
// @Failure      400   {object}  map[string]string
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка создания статьи", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка создания статьи")
		return
	}

	helpers.JSON(w, http.StatusCreated, article)
}

// GetAll
// @Summary      Список статей
// @Description  Все статьи по возрастанию id, каждая с полным набором свойств
// @Tags         articles
// @Produce      json
// @Success      200  {array}  models.Article
// @Router       /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAll(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения списка статей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статей")
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary      Статья по ID
// @Tags         articles
// @Produce      json
// @Param        id   path  int  true  "ID статьи"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  map[string]string
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		logger.Log.Error("Ошибка получения статьи", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статьи")
		return
	}
	if article == nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// Update
// @Summary      Обновить статью
// @Description  Частичное обновление: отсутствующее поле не меняется; properties (в том числе пустой массив) заменяет весь набор
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID статьи"
// @Param        body  body  models.UpdateArticleRequest  true  "Изменяемые поля"
// @Success      200   {object}  models.Article
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/articles/{id} [patch]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при обновлении статьи", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		default:
			logger.Log.Error("Ошибка обновления статьи", zap.Int64("id", id), zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Ошибка обновления статьи")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// Delete
// @Summary      Удалить статью
// @Description  success=false, если статьи не было; свойства удаляются каскадом
// @Tags         articles
// @Produce      json
// @Param        id   path  int  true  "ID статьи"
// @Success      200  {object}  models.DeleteArticleResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	ok, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		logger.Log.Error("Ошибка удаления статьи", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления статьи")
		return
	}

	helpers.JSON(w, http.StatusOK, models.DeleteArticleResponse{Success: ok})
}

// Preview
// @Summary      Предпросмотр статьи
// @Description  Возвращает очищенный HTML (без сохранения в БД)
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body   map[string]string  true  "Сырый HTML статьи"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/articles/preview [post]
func (h *ArticleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		Content string `json:"content"`
	}
	var req reqT
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при предпросмотре статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	safe := h.svc.PreviewHTML(req.Content)
	helpers.JSON(w, http.StatusOK, map[string]string{"content": safe})
}
