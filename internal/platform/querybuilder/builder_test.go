package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "confirmation_status").
		From("game_pods").
		Where(Eq("league_id", "l1"), IsNull("deleted_at")).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, confirmation_status FROM game_pods WHERE league_id = $1 AND deleted_at IS NULL ORDER BY created_at, id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "l1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderForUpdate(t *testing.T) {
	query, args, err := Select("*").
		From("game_pods").
		Where(Eq("id", "p1")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select for update query: %v", err)
	}

	wantQuery := "SELECT * FROM game_pods WHERE id = $1 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("game_players").
		Columns("pod_id", "player_id").
		Values("p1", "u1").
		Suffix("ON CONFLICT (pod_id, player_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO game_players (pod_id, player_id) VALUES ($1, $2) ON CONFLICT (pod_id, player_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderIncrement(t *testing.T) {
	query, args, err := Update("user_leagues").
		Increment("league_wins", 1).
		SetNow("updated_at").
		Where(Eq("league_id", "l1"), Eq("user_id", "u1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE user_leagues SET league_wins = league_wins + $1, updated_at = NOW() WHERE league_id = $2 AND user_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 1 || args[2] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("game_pods").
		Where(Eq("league_id", "l1"), Eq("is_tournament_game", true)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM game_pods WHERE league_id = $1 AND is_tournament_game = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("game_pods").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		PodID    string `db:"pod_id"`
		PlayerID string `db:"player_id"`
		internal int
		Skipped  string `db:"-"`
	}

	query, args, err := InsertModel("game_players", row{PodID: "p1", PlayerID: "u1"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO game_players (pod_id, player_id) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		PodID     string `db:"pod_id"`
		PlayerID  string `db:"player_id,pk"`
		TurnOrder int    `db:"turn_order"`
	}

	rows := []row{
		{PodID: "p1", PlayerID: "u1", TurnOrder: 1},
		{PodID: "p1", PlayerID: "u2", TurnOrder: 2},
	}
	query, args, err := InsertModels("game_players", rows, "ON CONFLICT DO NOTHING")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO game_players (pod_id, player_id, turn_order) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[4] != "u2" || args[5] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[row]("game_players", nil, ""); err == nil {
		t.Fatalf("expected empty batch to be rejected")
	}
	if _, _, err := InsertModels("game_players", []any{rows[0], struct{ X int }{}}, ""); err == nil {
		t.Fatalf("expected mixed model types to be rejected")
	}
	if _, _, err := InsertModel("game_players", 42, ""); err == nil {
		t.Fatalf("expected non-struct model to be rejected")
	}
}

func TestInCondition(t *testing.T) {
	query, args, err := Select("*").From("game_players").Where(In("pod_id", []string{"p1", "p2"})).ToSQL()
	if err != nil {
		t.Fatalf("build in query: %v", err)
	}
	if query != "SELECT * FROM game_players WHERE pod_id IN ($1, $2)" || len(args) != 2 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}

	query, args, err = Select("*").From("game_players").Where(In[string]("pod_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build empty in query: %v", err)
	}
	if query != "SELECT * FROM game_players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected empty in query %q args %+v", query, args)
	}
}
