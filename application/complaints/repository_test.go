package complaints

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"civictrack/common"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// A pooled :memory: DSN would give every connection its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&common.Complaint{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newComplaint(code string, createdAt time.Time) *common.Complaint {
	return &common.Complaint{
		TicketCode:  code,
		Name:        "A",
		Mobile:      "1",
		Category:    "Roads",
		Description: "pothole",
		Area:        "X",
		Status:      common.StatusSubmitted,
		CreatedAt:   createdAt,
	}
}

func TestRepository_Create(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	complaint := newComplaint("TKT-2025-12345", time.Time{})
	if err := repo.Create(ctx, complaint); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if complaint.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if complaint.CreatedAt.IsZero() {
		t.Error("expected store-assigned createdAt")
	}
}

func TestRepository_Create_DuplicateTicketCode(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newComplaint("TKT-2025-11111", time.Time{})); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := repo.Create(ctx, newComplaint("TKT-2025-11111", time.Time{}))
	if !common.IsKind(err, common.KindConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestRepository_FindByTicketCode(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created := newComplaint("TKT-2025-22222", time.Time{})
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByTicketCode(ctx, "TKT-2025-22222")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}

	// Exact match is case-sensitive.
	if _, err := repo.FindByTicketCode(ctx, "tkt-2025-22222"); !common.IsKind(err, common.KindNotFound) {
		t.Errorf("expected not-found for lowercased code, got %v", err)
	}

	if _, err := repo.FindByTicketCode(ctx, "TKT-2099-00000"); !common.IsKind(err, common.KindNotFound) {
		t.Errorf("expected not-found for never-issued code, got %v", err)
	}
}

func TestRepository_List_OrderedByCreatedAt(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	// Insert out of creation order.
	times := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, ts := range times {
		c := newComplaint(fmt.Sprintf("TKT-2025-3000%d", i), ts)
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 complaints, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.Before(listed[i-1].CreatedAt) {
			t.Errorf("list not in non-decreasing createdAt order at index %d", i)
		}
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created := newComplaint("TKT-2025-44444", time.Time{})
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, created.ID, common.StatusResolved)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != common.StatusResolved {
		t.Errorf("expected status %s, got %s", common.StatusResolved, updated.Status)
	}

	// Only status changes; every other field stays identical.
	reloaded, err := repo.FindByTicketCode(ctx, created.TicketCode)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Name != created.Name ||
		reloaded.Mobile != created.Mobile ||
		reloaded.Category != created.Category ||
		reloaded.Description != created.Description ||
		reloaded.Area != created.Area ||
		reloaded.TicketCode != created.TicketCode ||
		!reloaded.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("update touched fields other than status: %+v vs %+v", reloaded, created)
	}
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newComplaint("TKT-2025-55555", time.Time{})); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := repo.UpdateStatus(ctx, 9999, common.StatusResolved)
	if !common.IsKind(err, common.KindNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}

	// Store unchanged after the miss.
	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Status != common.StatusSubmitted {
		t.Errorf("store changed after not-found update: %+v", listed)
	}
}

func TestRepository_UpdateStatus_PassesThroughUnknownValues(t *testing.T) {
	// The enum guard lives in the validator; the store accepts whatever it
	// is handed.
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created := newComplaint("TKT-2025-66666", time.Time{})
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, created.ID, "CLOSED")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != "CLOSED" {
		t.Errorf("expected pass-through status, got %s", updated.Status)
	}
}
