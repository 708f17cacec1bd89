package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	apperrors "churnreport/internal/errors"
	"churnreport/internal/profiling"
	"churnreport/internal/report"
)

// pageData is the view model of the report page
type pageData struct {
	Title         string
	Report        *report.Report
	Intro         RenderedSection
	TargetChart   template.HTML
	TargetRemark  template.HTML
	MissingRemark template.HTML
	Model         []RenderedSection
	HasAssets     bool
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	chart, err := PieChart(a.report.Target, 320)
	if err != nil {
		a.logger.Warnf("[UI] Target chart skipped: %v", err)
	}
	data := pageData{
		Title:         "Técnicas de Machine Learning para la Prevención del Retiro de Clientes",
		Report:        a.report,
		Intro:         RenderSections([]Section{IntroSection()})[0],
		TargetChart:   chart,
		TargetRemark:  renderMarkdown(TargetRemark(a.report)),
		MissingRemark: renderMarkdown(MissingRemark(a.report)),
		Model:         RenderSections(ModelSections()),
		HasAssets:     a.assetsDir != "",
	}
	a.renderTemplate(w, "report.html", data)
}

// renderTemplate renders into a buffer first so template errors never produce half a page
func (a *App) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, name, data); err != nil {
		a.logger.Errorf("[UI] Template error for %s: %v", name, err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Warnf("[UI] Error writing template response: %v", err)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"report_id": a.report.ID,
	})
}

func (a *App) handleDictionaryCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := report.WriteDictionaryCSV(&buf, a.report.Dictionary); err != nil {
		a.logger.Errorf("[UI] Dictionary CSV failed: %v", err)
		http.Error(w, "failed to encode dictionary", http.StatusInternalServerError)
		return
	}
	writeDownload(w, report.DictionaryFileName, "text/csv; charset=utf-8", buf.Bytes())
}

func (a *App) handleMissingCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := report.WriteMissingCSV(&buf, a.report.Missing); err != nil {
		a.logger.Errorf("[UI] Missing CSV failed: %v", err)
		http.Error(w, "failed to encode missing summary", http.StatusInternalServerError)
		return
	}
	writeDownload(w, report.MissingFileName, "text/csv; charset=utf-8", buf.Bytes())
}

func (a *App) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, a.report); err != nil {
		a.logger.Errorf("[UI] Workbook export failed: %v", err)
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}
	writeDownload(w, report.WorkbookFileName,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (a *App) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.report)
}

func (a *App) handleAPIDictionary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dictionary": a.report.Dictionary,
		"count":      len(a.report.Dictionary),
	})
}

func (a *App) handleAPIMissing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"missing":              a.report.Missing,
		"rows":                 a.report.Rows,
		"columns_with_missing": a.report.ColumnsWithMissing,
	})
}

func (a *App) handleAPITarget(w http.ResponseWriter, r *http.Request) {
	if a.report.Target == nil {
		writeError(w, profiling.ErrTargetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, a.report.Target)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the AppError code of err to an HTTP status and a JSON body
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	if code == apperrors.CodeNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": code})
}

func writeDownload(w http.ResponseWriter, filename, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
