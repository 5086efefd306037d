package usage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"example.com/finance-advisor/backend/internal/models"
)

type fakeClient struct {
	err      error
	payloads []ReportPayload
}

func (c *fakeClient) Deliver(_ context.Context, payload ReportPayload) error {
	c.payloads = append(c.payloads, payload)
	return c.err
}

type fakeLog struct {
	records []models.UsageReport
}

func (l *fakeLog) Log(_ context.Context, report models.UsageReport) error {
	l.records = append(l.records, report)
	return nil
}

// TestServiceReportDisabled проверяет, что выключенный сервис ничего не делает.
func TestServiceReportDisabled(t *testing.T) {
	client := &fakeClient{}
	log := &fakeLog{}
	service := NewService(client, log, false)

	service.Report(context.Background(), models.Session{ID: uuid.New()}, 1000, "analyze")

	if len(client.payloads) != 0 {
		t.Fatalf("expected no deliveries, got %d", len(client.payloads))
	}
	if len(log.records) != 0 {
		t.Fatalf("expected no log records, got %d", len(log.records))
	}
}

// TestServiceReportDelivered проверяет журналирование успешной доставки.
func TestServiceReportDelivered(t *testing.T) {
	client := &fakeClient{}
	log := &fakeLog{}
	service := NewService(client, log, true)

	session := models.Session{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Analisis Agustus",
		HealthScore: 72,
		Grade:       "B",
		TopFocus:    "dana darurat",
	}

	service.Report(context.Background(), session, 9000000, "analyze")

	if len(client.payloads) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(client.payloads))
	}
	payload := client.payloads[0]
	if payload.SessionID != session.ID.String() || payload.HealthScore != 72 || payload.MonthlyIncome != 9000000 {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if len(log.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(log.records))
	}
	record := log.records[0]
	if !record.Delivered || record.Error != nil {
		t.Fatalf("expected delivered record, got %+v", record)
	}
	if record.Endpoint != "analyze" {
		t.Fatalf("expected endpoint analyze, got %s", record.Endpoint)
	}
}

// TestServiceReportFailure проверяет журналирование ошибки доставки.
func TestServiceReportFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("collector down")}
	log := &fakeLog{}
	service := NewService(client, log, true)

	service.Report(context.Background(), models.Session{ID: uuid.New(), UserID: uuid.New()}, 0, "analyze")

	if len(log.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(log.records))
	}
	record := log.records[0]
	if record.Delivered {
		t.Fatal("expected delivered=false")
	}
	if record.Error == nil || *record.Error != "collector down" {
		t.Fatalf("expected error message, got %+v", record.Error)
	}
}
