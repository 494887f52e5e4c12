package repository

import (
	"testing"
	"time"

	"scrambledstates/internal/database"
	"scrambledstates/internal/models"
)

// newTestDB opens a throwaway SQLite database with the full schema. A
// file in t.TempDir rather than :memory:, because every pooled
// connection to :memory: would see its own empty database.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.OpenSQLite(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestProfileCreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))

	created, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create should assign an ID")
	}

	byID, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if byID == nil || byID.Username != "scout" || byID.Avatar != "fox" {
		t.Errorf("GetByID = %+v, want scout/fox", byID)
	}

	byName, err := repo.GetByUsername("scout")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Errorf("GetByUsername = %+v, want ID %d", byName, created.ID)
	}

	missing, err := repo.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("GetByUsername(nobody) error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetByUsername(nobody) = %+v, want nil", missing)
	}
}

func TestRecordGameUpdatesAggregates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))
	p, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	games := []models.GameHistoryEntry{
		{Mode: models.ModeEducational, Score: 40, Streak: 3},
		{Mode: models.ModeEducational, Score: 60, Streak: 5},
		{Mode: models.ModeSpeed, Score: 25, Streak: 2},
	}
	for _, g := range games {
		if err := repo.RecordGame(p.ID, g); err != nil {
			t.Fatalf("RecordGame error: %v", err)
		}
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.TotalScore != 125 {
		t.Errorf("TotalScore = %d, want 125", got.TotalScore)
	}
	if got.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", got.GamesPlayed)
	}
	if got.HighestScore != 60 {
		t.Errorf("HighestScore = %d, want 60", got.HighestScore)
	}

	// The mode total only sums that mode's games
	eduScore, err := repo.ModeScore(p.ID, models.ModeEducational)
	if err != nil {
		t.Fatalf("ModeScore error: %v", err)
	}
	if eduScore != 100 {
		t.Errorf("educational ModeScore = %d, want 100", eduScore)
	}

	matchScore, err := repo.ModeScore(p.ID, models.ModeMatch)
	if err != nil {
		t.Fatalf("ModeScore error: %v", err)
	}
	if matchScore != 0 {
		t.Errorf("match ModeScore = %d, want 0 with no games", matchScore)
	}
}

func TestHistoryIsCappedAndMostRecentFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))
	p, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	total := models.MaxHistoryEntries + 5
	for i := 0; i < total; i++ {
		entry := models.GameHistoryEntry{
			Mode:     models.ModeEducational,
			Score:    i,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.RecordGame(p.ID, entry); err != nil {
			t.Fatalf("RecordGame %d error: %v", i, err)
		}
	}

	history, err := repo.History(p.ID, 0)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != models.MaxHistoryEntries {
		t.Fatalf("history length = %d, want capped at %d", len(history), models.MaxHistoryEntries)
	}

	// Most recent first: the newest game has the highest score here
	if history[0].Score != total-1 {
		t.Errorf("history[0].Score = %d, want %d", history[0].Score, total-1)
	}
	for i := 1; i < len(history); i++ {
		if history[i].PlayedAt.After(history[i-1].PlayedAt) {
			t.Fatalf("history out of order at %d", i)
		}
	}

	// The oldest games were trimmed away
	for _, e := range history {
		if e.Score < total-models.MaxHistoryEntries {
			t.Errorf("trimmed game with score %d still present", e.Score)
		}
	}
}

func TestBadgeUpgradeIsMonotonic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))
	p, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	tier, err := repo.Badge(p.ID, models.ModeSpeed)
	if err != nil {
		t.Fatalf("Badge error: %v", err)
	}
	if tier != models.BadgeNone {
		t.Errorf("initial badge = %v, want None", tier)
	}

	steps := []struct {
		upgrade models.BadgeTier
		want    models.BadgeTier
	}{
		{models.BadgeBronze, models.BadgeBronze},
		{models.BadgeGold, models.BadgeGold},
		{models.BadgeSilver, models.BadgeGold}, // downgrade ignored
		{models.BadgeGold, models.BadgeGold},   // same tier ignored
		{models.BadgePlatinum, models.BadgePlatinum},
	}
	for i, step := range steps {
		if err := repo.UpgradeBadge(p.ID, models.ModeSpeed, step.upgrade); err != nil {
			t.Fatalf("UpgradeBadge step %d error: %v", i, err)
		}
		got, err := repo.Badge(p.ID, models.ModeSpeed)
		if err != nil {
			t.Fatalf("Badge step %d error: %v", i, err)
		}
		if got != step.want {
			t.Errorf("step %d: badge = %v, want %v", i, got, step.want)
		}
	}

	// Badges are tracked per mode
	other, err := repo.Badge(p.ID, models.ModeEducational)
	if err != nil {
		t.Fatalf("Badge error: %v", err)
	}
	if other != models.BadgeNone {
		t.Errorf("educational badge = %v, want None", other)
	}
}

func TestBadgesByProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))
	p, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.UpgradeBadge(p.ID, models.ModeSpeed, models.BadgeSilver); err != nil {
		t.Fatalf("UpgradeBadge error: %v", err)
	}
	if err := repo.UpgradeBadge(p.ID, models.ModeMatch, models.BadgeBronze); err != nil {
		t.Fatalf("UpgradeBadge error: %v", err)
	}

	badges, err := repo.Badges(p.ID)
	if err != nil {
		t.Fatalf("Badges error: %v", err)
	}
	if badges.Badge(models.ModeSpeed) != models.BadgeSilver {
		t.Errorf("speed badge = %v, want Silver", badges.Badge(models.ModeSpeed))
	}
	if badges.Badge(models.ModeMatch) != models.BadgeBronze {
		t.Errorf("match badge = %v, want Bronze", badges.Badge(models.ModeMatch))
	}
	if badges.Badge(models.ModeDistance) != models.BadgeNone {
		t.Errorf("distance badge = %v, want None", badges.Badge(models.ModeDistance))
	}
}

func TestUsernameScreening(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	db := newTestDB(t)
	for _, w := range []string{"grawlix", "blargh"} {
		if _, err := db.Exec("INSERT INTO blocked_words (word) VALUES (?)", w); err != nil {
			t.Fatalf("failed to seed word: %v", err)
		}
	}

	blocked, err := db.IsWordBlocked("  GRAWLIX ")
	if err != nil {
		t.Fatalf("IsWordBlocked error: %v", err)
	}
	if !blocked {
		t.Error("IsWordBlocked should match case-insensitively with whitespace trimmed")
	}

	ok, err := db.IsWordBlocked("scout")
	if err != nil {
		t.Fatalf("IsWordBlocked error: %v", err)
	}
	if ok {
		t.Error("IsWordBlocked should not flag a clean word")
	}
}

func TestProfileDeleteCascades(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	repo := NewProfileRepository(newTestDB(t))
	p, err := repo.Create("scout", "fox")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.RecordGame(p.ID, models.GameHistoryEntry{Mode: models.ModeSpeed, Score: 10}); err != nil {
		t.Fatalf("RecordGame error: %v", err)
	}
	if err := repo.UpgradeBadge(p.ID, models.ModeSpeed, models.BadgeBronze); err != nil {
		t.Fatalf("UpgradeBadge error: %v", err)
	}

	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != nil {
		t.Fatal("profile should be gone after Delete")
	}

	history, err := repo.History(p.ID, 0)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history after delete = %d entries, want 0", len(history))
	}
}
