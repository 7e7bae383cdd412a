package services

import (
	"context"
	"testing"

	"github.com/vani-campus/vani/internal/app/models"
)

func TestLeaderboardDefaultLimit(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		createUser(t, repos, string(rune('a'+i)), models.RoleStudent, i)
	}

	top, err := svcs.Users.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(top) != DefaultLeaderboardSize {
		t.Errorf("len = %d, want %d", len(top), DefaultLeaderboardSize)
	}
	if top[0].Karma != 14 {
		t.Errorf("top karma = %d, want 14", top[0].Karma)
	}
}

func TestLeaderboardExplicitLimit(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	createUser(t, repos, "a", models.RoleStudent, 3)
	createUser(t, repos, "b", models.RoleProfessor, 7)

	top, err := svcs.Users.Leaderboard(ctx, 1)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(top) != 1 || top[0].Name != "b" {
		t.Errorf("top = %+v, want single entry for b", top)
	}
}
