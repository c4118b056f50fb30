package usecase

import (
	"errors"
	"testing"

	"github.com/gglink/gglink/internal/storage"
)

func TestLobbyService_CreateOwnerIsFirstPlayer(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")

	lobby := seedLobby(t, svc, owner.ID, 4)

	if lobby.OwnerID != owner.ID {
		t.Errorf("expected owner %s, got %s", owner.ID, lobby.OwnerID)
	}
	if len(lobby.Players) != 1 || lobby.Players[0].ID != owner.ID {
		t.Errorf("expected the owner as first player, got %+v", lobby.Players)
	}
	if lobby.SkillLevel != "Any" {
		t.Errorf("expected default skill level Any, got %q", lobby.SkillLevel)
	}
}

func TestLobbyService_CreateValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")

	cases := []struct {
		name string
		in   CreateLobbyInput
	}{
		{"short name", CreateLobbyInput{Name: "ab", Game: "CS2", Mode: "5v5", MaxPlayers: 5}},
		{"missing game", CreateLobbyInput{Name: "good name", Mode: "5v5", MaxPlayers: 5}},
		{"capacity too small", CreateLobbyInput{Name: "good name", Game: "CS2", Mode: "5v5", MaxPlayers: 1}},
		{"capacity too big", CreateLobbyInput{Name: "good name", Game: "CS2", Mode: "5v5", MaxPlayers: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(owner.ID, tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestLobbyService_JoinCapacityAndDuplicates(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")
	second := seedUser(t, db, "second")
	third := seedUser(t, db, "third")

	lobby := seedLobby(t, svc, owner.ID, 2)

	joined, err := svc.Join(lobby.ID, second.ID)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if len(joined.Players) != 2 {
		t.Errorf("expected 2 players, got %d", len(joined.Players))
	}

	if _, err := svc.Join(lobby.ID, second.ID); !errors.Is(err, ErrAlreadyJoined) {
		t.Errorf("expected ErrAlreadyJoined, got %v", err)
	}
	if _, err := svc.Join(lobby.ID, third.ID); !errors.Is(err, ErrLobbyFull) {
		t.Errorf("expected ErrLobbyFull, got %v", err)
	}
	if _, err := svc.Join("00000000-0000-0000-0000-000000000000", third.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLobbyService_LeaveRules(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")
	second := seedUser(t, db, "second")

	lobby := seedLobby(t, svc, owner.ID, 4)
	if _, err := svc.Join(lobby.ID, second.ID); err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	if _, _, err := svc.Leave(lobby.ID, seedUser(t, db, "stranger").ID); !errors.Is(err, ErrNotMember) {
		t.Errorf("expected ErrNotMember, got %v", err)
	}

	// Owner leaves while someone remains: lobby stays.
	remaining, deleted, err := svc.Leave(lobby.ID, owner.ID)
	if err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if deleted {
		t.Fatal("lobby must survive while players remain")
	}
	if len(remaining.Players) != 1 {
		t.Errorf("expected 1 remaining player, got %d", len(remaining.Players))
	}
}

func TestLobbyService_OwnerLeavingEmptyLobbyDeletesIt(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")

	lobby := seedLobby(t, svc, owner.ID, 4)

	_, deleted, err := svc.Leave(lobby.ID, owner.ID)
	if err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if !deleted {
		t.Fatal("expected the emptied lobby to be deleted")
	}
	if _, err := svc.Get(lobby.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestLobbyService_DeleteOwnerOnly(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	lobby := seedLobby(t, svc, owner.ID, 4)

	if err := svc.Delete(lobby.ID, other.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(lobby.ID, owner.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(lobby.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLobbyService_ListFilters(t *testing.T) {
	db := setupDB(t)
	svc := NewLobbyService(storage.NewLobbyRepository(db), storage.NewUserRepository(db))
	owner := seedUser(t, db, "owner")

	mk := func(name, game, skill string, max int) {
		t.Helper()
		if _, err := svc.Create(owner.ID, CreateLobbyInput{
			Name: name, Game: game, Mode: "any", SkillLevel: skill, MaxPlayers: max,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	mk("cs casual", "Counter-Strike 2", "Any", 10)
	mk("cs sweats", "Counter-Strike 2", "Pro", 5)
	mk("league", "League of Legends", "Beginner", 5)

	byGame, err := svc.List(storage.LobbyFilter{Game: "Counter"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(byGame) != 2 {
		t.Errorf("expected 2 CS lobbies, got %d", len(byGame))
	}

	bySkill, err := svc.List(storage.LobbyFilter{SkillLevel: "Pro"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bySkill) != 1 {
		t.Errorf("expected 1 Pro lobby, got %d", len(bySkill))
	}

	bySlots, err := svc.List(storage.LobbyFilter{MinSlots: 6})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bySlots) != 1 {
		t.Errorf("expected 1 lobby with capacity >= 6, got %d", len(bySlots))
	}

	all, err := svc.List(storage.LobbyFilter{SkillLevel: "Any"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected skill filter Any to match everything, got %d", len(all))
	}
}
