package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
	qb "github.com/garretthaima/escalation-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const (
	podsTable         = "game_pods"
	participantsTable = "game_players"
)

const upsertParticipantSuffix = `ON CONFLICT (pod_id, player_id) DO UPDATE SET
	result = EXCLUDED.result,
	confirmed = EXCLUDED.confirmed,
	turn_order = EXCLUDED.turn_order,
	elo_change = EXCLUDED.elo_change,
	elo_before = EXCLUDED.elo_before,
	deleted_at = CASE WHEN EXCLUDED.deleted_at IS NULL THEN NULL ELSE COALESCE(game_players.deleted_at, EXCLUDED.deleted_at) END`

type PodRepository struct {
	db  queryer
	now func() time.Time
}

func NewPodRepository(db queryer) *PodRepository {
	return &PodRepository{db: db, now: time.Now}
}

func (r *PodRepository) Create(ctx context.Context, p pod.Pod) error {
	query, args, err := qb.InsertModel(podsTable, r.podRow(p), "")
	if err != nil {
		return fmt.Errorf("build insert pod query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pod %s: %w", p.ID, err)
	}

	return r.insertParticipants(ctx, p.ID, p.Participants, "")
}

func (r *PodRepository) GetByID(ctx context.Context, podID string) (pod.Pod, bool, error) {
	return r.get(ctx, podID, false)
}

// GetForUpdate holds a row lock on the pod until the transaction ends, which
// serializes confirmations and admin edits of the same pod.
func (r *PodRepository) GetForUpdate(ctx context.Context, podID string) (pod.Pod, bool, error) {
	return r.get(ctx, podID, true)
}

func (r *PodRepository) get(ctx context.Context, podID string, lock bool) (pod.Pod, bool, error) {
	builder := qb.Select("*").From(podsTable).Where(qb.Eq("id", podID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return pod.Pod{}, false, fmt.Errorf("build get pod query: %w", err)
	}

	var row podTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pod.Pod{}, false, nil
		}
		return pod.Pod{}, false, fmt.Errorf("get pod: %w", err)
	}

	participants, err := r.participantsByPod(ctx, []string{podID})
	if err != nil {
		return pod.Pod{}, false, err
	}

	out, err := podFromRow(row, participants[podID])
	if err != nil {
		return pod.Pod{}, false, err
	}
	return out, true, nil
}

// Update writes the pod's own columns. Participants are left untouched.
func (r *PodRepository) Update(ctx context.Context, p pod.Pod) error {
	query, args, err := qb.Update(podsTable).
		Set("session_id", nullString(p.SessionID)).
		Set("confirmation_status", string(p.Status)).
		Set("result", nullString(string(p.Result))).
		Set("is_tournament_game", p.IsTournamentGame).
		Set("is_championship_game", p.IsChampionshipGame).
		Set("tournament_round", nullPositive(p.TournamentRound)).
		Set("published", p.Published).
		Set("updated_at", r.stamp(p.UpdatedAt)).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update pod query: %w", err)
	}

	found, err := execAffected(ctx, r.db, "update pod", query, args)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("pod not found: %s", p.ID)
	}
	return nil
}

func (r *PodRepository) ListByLeague(ctx context.Context, leagueID string, filter pod.Filter) ([]pod.Pod, error) {
	conditions := append([]qb.Condition{qb.Eq("league_id", leagueID)}, filterConditions(filter)...)
	query, args, err := qb.Select("*").From(podsTable).
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pods query: %w", err)
	}

	var rows []podTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}
	if len(rows) == 0 {
		return []pod.Pod{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	participants, err := r.participantsByPod(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]pod.Pod, 0, len(rows))
	for _, row := range rows {
		item, err := podFromRow(row, participants[row.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *PodRepository) ReplaceParticipants(ctx context.Context, podID string, participants []pod.Participant) error {
	query, args, err := qb.DeleteFrom(participantsTable).Where(qb.Eq("pod_id", podID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete participants query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete participants of pod %s: %w", podID, err)
	}

	return r.insertParticipants(ctx, podID, participants, "")
}

func (r *PodRepository) UpsertParticipant(ctx context.Context, participant pod.Participant) error {
	return r.insertParticipants(ctx, participant.PodID, []pod.Participant{participant}, upsertParticipantSuffix)
}

// SoftDelete stamps deleted_at on the pod and on its live participant rows.
func (r *PodRepository) SoftDelete(ctx context.Context, podID string) error {
	statements, err := softDeleteStatements(podID, r.now().UTC())
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("soft delete pod %s: %w", podID, err)
		}
	}
	return nil
}

type statement struct {
	query string
	args  []any
}

func softDeleteStatements(podID string, at time.Time) ([]statement, error) {
	builders := []*qb.UpdateBuilder{
		qb.Update(podsTable).
			Set("deleted_at", at).
			SetNow("updated_at").
			Where(qb.Eq("id", podID), qb.IsNull("deleted_at")),
		qb.Update(participantsTable).
			Set("deleted_at", at).
			Where(qb.Eq("pod_id", podID), qb.IsNull("deleted_at")),
	}

	out := make([]statement, 0, len(builders))
	for _, b := range builders {
		query, args, err := b.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build soft delete pod query: %w", err)
		}
		out = append(out, statement{query: query, args: args})
	}
	return out, nil
}

// DeleteTournamentPods relies on ON DELETE CASCADE to drop participant rows.
func (r *PodRepository) DeleteTournamentPods(ctx context.Context, leagueID string, filter pod.Filter) (int, error) {
	conditions := append([]qb.Condition{
		qb.Eq("league_id", leagueID),
		qb.Eq("is_tournament_game", true),
	}, filterConditions(filter)...)
	query, args, err := qb.DeleteFrom(podsTable).Where(conditions...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete tournament pods query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete tournament pods: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete tournament pods rows affected: %w", err)
	}
	return int(n), nil
}

func (r *PodRepository) insertParticipants(ctx context.Context, podID string, participants []pod.Participant, suffix string) error {
	if len(participants) == 0 {
		return nil
	}

	rows := make([]participantTableModel, 0, len(participants))
	for _, item := range participants {
		item.PodID = podID
		rows = append(rows, r.participantRow(item))
	}
	query, args, err := qb.InsertModels(participantsTable, rows, suffix)
	if err != nil {
		return fmt.Errorf("build insert participants query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert participants pod=%s: %w", podID, err)
	}
	return nil
}

func (r *PodRepository) participantsByPod(ctx context.Context, podIDs []string) (map[string][]participantTableModel, error) {
	query, args, err := qb.Select("*").From(participantsTable).
		Where(qb.In("pod_id", podIDs)).
		OrderBy("pod_id", "turn_order", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participants query: %w", err)
	}

	var rows []participantTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	out := make(map[string][]participantTableModel, len(podIDs))
	for _, row := range rows {
		out[row.PodID] = append(out[row.PodID], row)
	}
	return out, nil
}

func (r *PodRepository) podRow(p pod.Pod) podTableModel {
	row := podTableModel{
		ID:                 p.ID,
		LeagueID:           p.LeagueID,
		SessionID:          nullString(p.SessionID),
		CreatorID:          p.CreatorID,
		Status:             string(p.Status),
		Result:             nullString(string(p.Result)),
		IsTournamentGame:   p.IsTournamentGame,
		IsChampionshipGame: p.IsChampionshipGame,
		TournamentRound:    nullPositive(p.TournamentRound),
		Published:          p.Published,
		CreatedAt:          r.stamp(p.CreatedAt),
		UpdatedAt:          r.stamp(p.UpdatedAt),
	}
	if p.Deleted {
		row.DeletedAt = sql.NullTime{Time: r.now().UTC(), Valid: true}
	}
	return row
}

func (r *PodRepository) participantRow(item pod.Participant) participantTableModel {
	row := participantTableModel{
		PodID:     item.PodID,
		PlayerID:  item.PlayerID,
		Result:    nullString(string(item.Result)),
		Confirmed: item.Confirmed,
		TurnOrder: nullPositive(item.TurnOrder),
		EloChange: item.EloChange,
		EloBefore: nullPositive(item.EloBefore),
	}
	if item.Deleted {
		row.DeletedAt = sql.NullTime{Time: r.now().UTC(), Valid: true}
	}
	return row
}

func (r *PodRepository) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return r.now().UTC()
	}
	return t.UTC()
}

func filterConditions(filter pod.Filter) []qb.Condition {
	out := make([]qb.Condition, 0, 6)
	if !filter.IncludeDeleted {
		out = append(out, qb.IsNull("deleted_at"))
	}
	if filter.Status != nil {
		out = append(out, qb.Eq("confirmation_status", string(*filter.Status)))
	}
	if filter.Tournament != nil {
		out = append(out, qb.Eq("is_tournament_game", *filter.Tournament))
	}
	if filter.Championship != nil {
		out = append(out, qb.Eq("is_championship_game", *filter.Championship))
	}
	if filter.Published != nil {
		out = append(out, qb.Eq("published", *filter.Published))
	}
	if filter.TournamentRound != nil {
		out = append(out, qb.Eq("tournament_round", *filter.TournamentRound))
	}
	return out
}

func podFromRow(row podTableModel, participants []participantTableModel) (pod.Pod, error) {
	status, err := pod.ParseStatus(row.Status)
	if err != nil {
		return pod.Pod{}, fmt.Errorf("decode pod %s: %w", row.ID, err)
	}
	result, err := pod.ParseResult(row.Result.String)
	if err != nil {
		return pod.Pod{}, fmt.Errorf("decode pod %s: %w", row.ID, err)
	}

	out := pod.Pod{
		ID:                 row.ID,
		LeagueID:           row.LeagueID,
		SessionID:          row.SessionID.String,
		CreatorID:          row.CreatorID,
		Status:             status,
		Result:             result,
		IsTournamentGame:   row.IsTournamentGame,
		IsChampionshipGame: row.IsChampionshipGame,
		TournamentRound:    nullIntValue(row.TournamentRound),
		Published:          row.Published,
		Deleted:            row.DeletedAt.Valid,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		Participants:       make([]pod.Participant, 0, len(participants)),
	}
	for _, item := range participants {
		res, err := pod.ParseResult(item.Result.String)
		if err != nil {
			return pod.Pod{}, fmt.Errorf("decode participant %s of pod %s: %w", item.PlayerID, row.ID, err)
		}
		out.Participants = append(out.Participants, pod.Participant{
			PodID:     item.PodID,
			PlayerID:  item.PlayerID,
			Result:    res,
			Confirmed: item.Confirmed,
			TurnOrder: nullIntValue(item.TurnOrder),
			EloChange: item.EloChange,
			EloBefore: nullIntValue(item.EloBefore),
			Deleted:   item.DeletedAt.Valid,
		})
	}
	return out, nil
}
