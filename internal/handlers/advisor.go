package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-advisor/backend/internal/advisor"
	"example.com/finance-advisor/backend/internal/auth"
	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/models"
	"example.com/finance-advisor/backend/internal/notifications"
	"example.com/finance-advisor/backend/internal/profile"
	"example.com/finance-advisor/backend/internal/reportcache"
	"example.com/finance-advisor/backend/internal/repository"
	"example.com/finance-advisor/backend/internal/usage"
)

const (
	endpointAnalyze = "analyze"

	dateLayout          = "2006-01-02"
	maxSessionNameRunes = 120
)

type AdvisorHandler struct {
	Sessions *repository.SessionRepository
	Cache    *reportcache.Cache
	Usage    *usage.Service
	Notifier *notifications.Hub
}

// NewAdvisorHandler создает обработчик консультационных запросов.
func NewAdvisorHandler(sessions *repository.SessionRepository, cache *reportcache.Cache, usageService *usage.Service, notifier *notifications.Hub) *AdvisorHandler {
	return &AdvisorHandler{
		Sessions: sessions,
		Cache:    cache,
		Usage:    usageService,
		Notifier: notifier,
	}
}

type AnalyzeRequest struct {
	Name    string                   `json:"name" validate:"omitempty,max=120"`
	Profile profile.FinancialProfile `json:"profile"`
}

type SessionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	HealthScore int             `json:"health_score"`
	Grade       string          `json:"grade"`
	TopFocus    string          `json:"top_focus"`
	CreatedAt   time.Time       `json:"created_at"`
	Profile     json.RawMessage `json:"profile,omitempty"`
	Report      json.RawMessage `json:"report"`
}

type PreviewResponse struct {
	Aggregates finance.Aggregates     `json:"aggregates"`
	Metrics    []finance.HealthMetric `json:"metrics"`
	Allocation finance.Allocation     `json:"allocation"`
}

// Analyze строит полный отчет по профилю и сохраняет снимок сессии.
func (h *AdvisorHandler) Analyze(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	clampProfile(&req.Profile)

	profileJSON, err := json.Marshal(req.Profile)
	if err != nil {
		return serverError(c)
	}

	cacheKey := reportcache.Key(profileJSON)
	report, cached := h.Cache.Get(cacheKey)
	if !cached {
		built := advisor.BuildReport(req.Profile, time.Now().UTC())
		report = &built
		h.Cache.Set(cacheKey, report)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return serverError(c)
	}

	session, err := h.Sessions.Create(c.Request().Context(), userID, repository.SessionInput{
		Name:        sessionName(req.Name, time.Now()),
		Profile:     profileJSON,
		Report:      reportJSON,
		HealthScore: report.Score.Value,
		Grade:       report.Score.Grade,
		TopFocus:    advisor.TopFocus(*report),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid profile")
		}
		return serverError(c)
	}

	slog.Info("analysis completed",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("health_score", report.Score.Value),
		slog.Bool("cache_hit", cached))

	publishAnalysisCompleted(h.Notifier, userID, session)
	h.Usage.Report(c.Request().Context(), session, report.Aggregates.MonthlyIncome, endpointAnalyze)

	return c.JSON(http.StatusCreated, toSessionResponse(session, true))
}

// Preview возвращает агрегаты, коэффициенты и распределение без сохранения.
func (h *AdvisorHandler) Preview(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	clampProfile(&req.Profile)

	agg := finance.Aggregate(req.Profile)
	return c.JSON(http.StatusOK, PreviewResponse{
		Aggregates: agg,
		Metrics:    finance.HealthMetrics(agg),
		Allocation: finance.Allocate(req.Profile, agg),
	})
}

func toSessionResponse(session models.Session, includeProfile bool) SessionResponse {
	response := SessionResponse{
		ID:          session.ID,
		Name:        session.Name,
		HealthScore: session.HealthScore,
		Grade:       session.Grade,
		TopFocus:    session.TopFocus,
		CreatedAt:   session.CreatedAt,
		Report:      session.Report,
	}
	if includeProfile {
		response.Profile = session.Profile
	}
	return response
}

// sessionName возвращает имя сессии, подставляя дату для пустого ввода.
func sessionName(raw string, now time.Time) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = fmt.Sprintf("Analisis %s", now.Format(dateLayout))
	}

	runes := []rune(name)
	if len(runes) > maxSessionNameRunes {
		return string(runes[:maxSessionNameRunes])
	}
	return name
}

// clampProfile обнуляет отрицательные денежные поля на границе HTTP.
func clampProfile(p *profile.FinancialProfile) {
	clampInt(&p.Personal.Age)
	clampInt(&p.Personal.Dependents)

	clamp(&p.Income.Salary)
	clamp(&p.Income.Spouse)
	clamp(&p.Income.Side)
	for i := range p.Income.Sources {
		clamp(&p.Income.Sources[i].Amount)
	}

	clamp(&p.Expenses.Housing.Rent)
	clamp(&p.Expenses.Housing.Electricity)
	clamp(&p.Expenses.Housing.Water)
	clamp(&p.Expenses.Housing.Internet)
	clamp(&p.Expenses.Food.DailyMeals)
	clamp(&p.Expenses.Food.DailySnacks)
	clamp(&p.Expenses.Food.Groceries)
	clamp(&p.Expenses.Transport.Fuel)
	clamp(&p.Expenses.Transport.PublicTransit)
	clamp(&p.Expenses.Transport.RideHailing)
	clamp(&p.Expenses.Transport.Parking)
	clamp(&p.Expenses.Household.Essentials)
	clamp(&p.Expenses.Household.Laundry)
	clamp(&p.Expenses.Household.Helper)
	clamp(&p.Expenses.Health.Medication)
	clamp(&p.Expenses.Health.Checkups)
	clamp(&p.Expenses.Family.ChildCare)
	clamp(&p.Expenses.Family.Education)
	clamp(&p.Expenses.Family.ParentSupport)
	clamp(&p.Expenses.Lifestyle.Entertainment)
	clamp(&p.Expenses.Lifestyle.DiningOut)
	clamp(&p.Expenses.Lifestyle.Shopping)
	clamp(&p.Expenses.Lifestyle.Hobbies)
	for i := range p.Expenses.Subscriptions {
		clamp(&p.Expenses.Subscriptions[i].Amount)
	}
	for i := range p.Expenses.Custom {
		clamp(&p.Expenses.Custom[i].Amount)
	}

	for i := range p.Debts {
		clamp(&p.Debts[i].Balance)
		clamp(&p.Debts[i].AnnualRate)
		clamp(&p.Debts[i].MonthlyPayment)
		clampInt(&p.Debts[i].RemainingMonths)
	}

	clamp(&p.EmergencyFund.Current)

	clamp(&p.Assets.Liquid.Cash)
	clamp(&p.Assets.Liquid.Savings)
	clamp(&p.Assets.Liquid.Deposit)
	clamp(&p.Assets.Liquid.MoneyMarket)
	clamp(&p.Assets.Investment.BondFunds)
	clamp(&p.Assets.Investment.EquityFunds)
	clamp(&p.Assets.Investment.Stocks)
	clamp(&p.Assets.Investment.Gold)
	clamp(&p.Assets.Real.Property)
	clamp(&p.Assets.Real.Vehicle)
	clamp(&p.Assets.Real.Other)

	clamp(&p.Insurance.PublicHealth.MonthlyPremium)
	clamp(&p.Insurance.PrivateHealth.MonthlyPremium)
	for i := range p.Insurance.Policies {
		clamp(&p.Insurance.Policies[i].MonthlyPremium)
		clamp(&p.Insurance.Policies[i].CoverageAmount)
	}

	for i := range p.Goals {
		clamp(&p.Goals[i].Target)
		clamp(&p.Goals[i].Collected)
		clampInt(&p.Goals[i].Months)
	}
}

func clamp(value *float64) {
	if *value < 0 {
		*value = 0
	}
}

func clampInt(value *int) {
	if *value < 0 {
		*value = 0
	}
}
