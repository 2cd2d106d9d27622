package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"inkpad/internal/logger"
	"inkpad/internal/models"
	"inkpad/internal/services"
	helpers "inkpad/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ExportHandler struct {
	svc services.ExportService
}

func NewExportHandler(svc services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export
// @Summary      Экспорт статей
// @Description  Собирает выбранные статьи (или все, если article_ids не задан) в один HTML-документ с оглавлением. Формат pdf отдаёт тот же документ с печатными стилями; растеризацию выполняет внешний инструмент. Пустой набор — success=false.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        body  body   models.ExportRequest  true  "Формат и набор id"
// @Success      200   {object}  models.ExportResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/articles/export [post]
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при экспорте", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	res, err := h.svc.Export(r.Context(), req.Format, req.ArticleIDs)
	if err != nil {
		logger.Log.Error("Ошибка экспорта", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка экспорта")
		return
	}

	resp := models.ExportResponse{Success: res.Success}
	if res.Success {
		resp.DownloadURL = res.DownloadURL
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// Download
// @Summary      Скачать файл экспорта
// @Tags         export
// @Produce      html
// @Param        file  path  string  true  "Имя файла экспорта"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Router       /api/exports/{file} [get]
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]

	path, err := h.svc.ResolveFile(name)
	if err != nil {
		logger.Log.Warn("Файл экспорта не найден", zap.String("file", name), zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "Файл не найден")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Error("Файл экспорта не прочитан", zap.String("path", path), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Файл не прочитан")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}
