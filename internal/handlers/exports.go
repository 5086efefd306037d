package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"example.com/finance-advisor/backend/internal/advisor"
	"example.com/finance-advisor/backend/internal/auth"
	"example.com/finance-advisor/backend/internal/models"
	"example.com/finance-advisor/backend/internal/repository"
)

const (
	exportTypeMetrics    = "metrics"
	exportTypePriorities = "priorities"
	exportTypeActions    = "actions"
)

const timeLayout = time.RFC3339

// ExportJSON выгружает сессию с профилем и отчетом в JSON-файл.
func (h *SessionHandler) ExportJSON(c echo.Context) error {
	session, err := h.exportSession(c)
	if err != nil {
		return err
	}

	filename := "session-" + session.ID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, toSessionResponse(session, true))
}

// ExportCSV выгружает срез отчета в CSV-файл.
func (h *SessionHandler) ExportCSV(c echo.Context) error {
	session, err := h.exportSession(c)
	if err != nil {
		return err
	}

	var report advisor.Report
	if err := json.Unmarshal(session.Report, &report); err != nil {
		return serverError(c)
	}

	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypeMetrics
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch exportType {
	case exportTypeMetrics:
		err = writeMetricsCSV(writer, session, report)
	case exportTypePriorities:
		err = writePrioritiesCSV(writer, session, report)
	case exportTypeActions:
		err = writeActionsCSV(writer, session, report)
	default:
		return badRequest(c, "invalid export type")
	}
	if err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "session-" + session.ID.String() + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportHTML выгружает отчет как автономную HTML-страницу.
func (h *SessionHandler) ExportHTML(c echo.Context) error {
	session, err := h.exportSession(c)
	if err != nil {
		return err
	}

	var report advisor.Report
	if err := json.Unmarshal(session.Report, &report); err != nil {
		return serverError(c)
	}

	page, err := renderReportHTML(session, report)
	if err != nil {
		return serverError(c)
	}

	filename := "session-" + session.ID.String() + ".html"
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.HTMLBlob(http.StatusOK, page)
}

func (h *SessionHandler) exportSession(c echo.Context) (models.Session, error) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return models.Session{}, unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return models.Session{}, badRequest(c, "invalid session id")
	}

	session, err := h.Sessions.GetByID(c.Request().Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Session{}, notFound(c, "session not found")
		}
		return models.Session{}, serverError(c)
	}

	return session, nil
}

func writeMetricsCSV(writer *csv.Writer, session models.Session, report advisor.Report) error {
	header := []string{
		"session_id",
		"session_name",
		"metric",
		"value_percent",
		"status",
		"target",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, metric := range report.Metrics {
		record := []string{
			session.ID.String(),
			session.Name,
			metric.Name,
			formatFloat(metric.Value),
			string(metric.Status),
			metric.Target,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writePrioritiesCSV(writer *csv.Writer, session models.Session, report advisor.Report) error {
	header := []string{
		"session_id",
		"session_name",
		"rank",
		"level",
		"code",
		"title",
		"impact_amount",
		"window",
		"summary",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, priority := range report.Priorities {
		record := []string{
			session.ID.String(),
			session.Name,
			formatInt(priority.Rank),
			string(priority.Level),
			string(priority.Code),
			priority.Title,
			formatFloat(priority.ImpactAmount),
			priority.Window,
			priority.Summary,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeActionsCSV(writer *csv.Writer, session models.Session, report advisor.Report) error {
	header := []string{
		"session_id",
		"session_name",
		"horizon",
		"action",
		"amount",
		"deadline",
		"frequency",
		"rationale",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	horizons := []struct {
		name    string
		actions []advisor.TimedAction
	}{
		{"short_term", report.ActionPlan.ShortTerm},
		{"mid_term", report.ActionPlan.MidTerm},
		{"long_term", report.ActionPlan.LongTerm},
	}

	for _, horizon := range horizons {
		for _, action := range horizon.actions {
			record := []string{
				session.ID.String(),
				session.Name,
				horizon.name,
				action.Action,
				formatFloat(action.Amount),
				action.Deadline,
				action.Frequency,
				action.Rationale,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

// renderReportHTML собирает Markdown-версию отчета и конвертирует ее в HTML.
func renderReportHTML(session models.Session, report advisor.Report) ([]byte, error) {
	markdown := buildReportMarkdown(session, report)

	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"id\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>" + html.EscapeString(session.Name) + "</title>\n")
	page.WriteString("<style>body{font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;line-height:1.5}table{border-collapse:collapse}th,td{border:1px solid #ccc;padding:0.3rem 0.6rem;text-align:left}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func buildReportMarkdown(session models.Session, report advisor.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", session.Name)
	fmt.Fprintf(&b, "Dibuat: %s\n\n", session.CreatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "## Skor Kesehatan: %d/100 (%s)\n\n", report.Score.Value, report.Score.Grade)

	b.WriteString("| Indikator | Nilai | Status | Target |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, metric := range report.Metrics {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			metric.Name, advisor.FormatPercent(metric.Value), metric.Status, metric.Target)
	}
	b.WriteString("\n")

	if len(report.Priorities) > 0 {
		b.WriteString("## Prioritas\n\n")
		for _, priority := range report.Priorities {
			fmt.Fprintf(&b, "%d. **[%s] %s**: %s\n", priority.Rank, priority.Level, priority.Title, priority.Summary)
		}
		b.WriteString("\n")
	}

	writeActionSection(&b, "Rencana 0-3 bulan", report.ActionPlan.ShortTerm)
	writeActionSection(&b, "Rencana 3-12 bulan", report.ActionPlan.MidTerm)
	writeActionSection(&b, "Rencana di atas 12 bulan", report.ActionPlan.LongTerm)

	b.WriteString(report.Conclusion)
	if !strings.HasSuffix(report.Conclusion, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

func writeActionSection(b *strings.Builder, title string, actions []advisor.TimedAction) {
	if len(actions) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	for _, action := range actions {
		if action.Amount > 0 {
			fmt.Fprintf(b, "- **%s** (%s): %s, %s\n", action.Action, advisor.FormatRupiah(action.Amount), action.Deadline, action.Frequency)
		} else {
			fmt.Fprintf(b, "- **%s**: %s, %s\n", action.Action, action.Deadline, action.Frequency)
		}
	}
	b.WriteString("\n")
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}
