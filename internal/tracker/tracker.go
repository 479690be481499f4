package tracker

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/teamfight/internal/tracker/roster"
	"github.com/vango-dev/teamfight/pkg/app"
	"github.com/vango-dev/teamfight/pkg/reactive"
)

// Messages shown to the user.
const (
	msgTeamRequired    = "使用チームを入力してください。"
	msgDraftIncomplete = "すべてのレーンにチャンピオンを登録してください。"
	msgChampionInUse   = "このチャンピオンは既に別のレーンで使用されています。"
	msgConfirmClear    = "すべての試合データを削除しますか？"
)

// Tracker is the match tracker page. It owns no state itself: Setup builds
// the page state and every action operates on the state it is bound to.
type Tracker struct {
	roster  roster.Roster
	archive *Archive
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithRoster replaces the default roster.
func WithRoster(r roster.Roster) TrackerOption {
	return func(t *Tracker) {
		if r != nil {
			t.roster = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithClock sets the time source used for today's date and createdAt.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithIDGenerator sets the match id generator. Defaults to random UUIDs.
func WithIDGenerator(fn func() string) TrackerOption {
	return func(t *Tracker) {
		if fn != nil {
			t.newID = fn
		}
	}
}

// New returns a tracker persisting matches through archive.
func New(archive *Archive, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		roster:  roster.Default(),
		archive: archive,
		logger:  slog.Default().With("component", "tracker"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Component returns the page as an app component.
func (t *Tracker) Component() app.Component {
	return app.Component{Setup: t.Setup, Render: t.Render}
}

// Roster returns the champions offered by the picker.
func (t *Tracker) Roster() roster.Roster {
	return t.roster
}

func (t *Tracker) today() string {
	return t.now().UTC().Format(time.DateOnly)
}

// Setup builds the initial page state with the stored matches loaded.
func (t *Tracker) Setup() map[string]any {
	return map[string]any{
		"matches": t.archive.Load(),
		"matchForm": map[string]any{
			"teamName":  "",
			"opponent":  "",
			"side":      "blue",
			"result":    "win",
			"champions": EmptyDraft(),
			"notes":     "",
			"matchDate": t.today(),
		},
		"filters": map[string]any{
			"team":     "",
			"opponent": "",
			"side":     "all",
			"result":   "all",
		},
		"championSearch":     "",
		"showChampionPicker": false,
		"pickerContext":      nil,
		"pickerError":        "",
		"statsSort": map[string]any{
			"key":       string(DefaultStatsSort.Key),
			"direction": string(DefaultStatsSort.Direction),
		},
		"formError": "",

		"resetForm":               reactive.Method(t.resetForm),
		"openChampionPicker":      reactive.Method(t.openChampionPicker),
		"closeChampionPicker":     reactive.Method(t.closeChampionPicker),
		"assignChampionToContext": reactive.Method(t.assignChampionToContext),
		"clearChampionSlot":       reactive.Method(t.clearChampionSlot),
		"setSide":                 reactive.Method(t.setSide),
		"setResult":               reactive.Method(t.setResult),
		"submitMatch":             reactive.Method(t.submitMatch),
		"removeMatch":             reactive.Method(t.removeMatch),
		"clearMatches":            reactive.Method(t.clearMatches),
		"setStatsSort":            reactive.Method(t.setStatsSort),
	}
}

func (t *Tracker) resetForm(s *reactive.Object, _ ...any) any {
	form := s.Object("matchForm")
	form.Set("teamName", "")
	form.Set("opponent", "")
	form.Set("side", "blue")
	form.Set("result", "win")
	form.Set("champions", EmptyDraft())
	form.Set("notes", "")
	form.Set("matchDate", t.today())
	s.Set("formError", "")
	return nil
}

func (t *Tracker) openChampionPicker(s *reactive.Object, args ...any) any {
	team, lane := argString(args, 0), argString(args, 1)
	if TeamLabel(team) == "" || LaneLabel(lane) == "" {
		t.logger.Debug("picker opened for unknown slot", "team", team, "lane", lane)
		return nil
	}
	s.Set("championSearch", "")
	s.Set("pickerContext", map[string]any{"team": team, "lane": lane})
	s.Set("pickerError", "")
	s.Set("showChampionPicker", true)
	return nil
}

func (t *Tracker) closeChampionPicker(s *reactive.Object, _ ...any) any {
	s.Set("showChampionPicker", false)
	s.Set("pickerContext", nil)
	s.Set("pickerError", "")
	return nil
}

// assignChampionToContext puts a champion in the slot the picker is open
// for. Picking the slot's current champion just closes the picker; a
// champion used by another slot is refused with an error.
func (t *Tracker) assignChampionToContext(s *reactive.Object, args ...any) any {
	team, lane, ok := pickerSlot(s)
	if !ok {
		return nil
	}
	id := argString(args, 0)
	slots := s.Object("matchForm").Object("champions").Object(team)
	if slots == nil {
		return nil
	}
	if current, _ := slots.Get(lane).(string); current == id {
		return t.closeChampionPicker(s)
	}
	if isChampionSelected(s, id) {
		s.Set("pickerError", msgChampionInUse)
		return nil
	}
	slots.Set(lane, id)
	s.Set("pickerError", "")
	return t.closeChampionPicker(s)
}

func (t *Tracker) clearChampionSlot(s *reactive.Object, args ...any) any {
	team, lane := argString(args, 0), argString(args, 1)
	slots := s.Object("matchForm").Object("champions").Object(team)
	if slots == nil || LaneLabel(lane) == "" {
		return nil
	}
	slots.Set(lane, nil)
	s.Set("formError", "")
	return nil
}

func (t *Tracker) setSide(s *reactive.Object, args ...any) any {
	s.Object("matchForm").Set("side", argString(args, 0))
	return nil
}

func (t *Tracker) setResult(s *reactive.Object, args ...any) any {
	s.Object("matchForm").Set("result", argString(args, 0))
	return nil
}

// submitMatch validates the form and records a new match at the head of
// the list. It returns whether a match was recorded.
func (t *Tracker) submitMatch(s *reactive.Object, _ ...any) any {
	form := s.Object("matchForm")
	teamName := strings.TrimSpace(form.String("teamName"))
	if teamName == "" {
		s.Set("formError", msgTeamRequired)
		return false
	}

	draft := form.Object("champions").Snapshot()
	if len(ChampionIDs(draft)) < TotalSlots {
		s.Set("formError", msgDraftIncomplete)
		return false
	}

	match := map[string]any{
		"id":        t.newID(),
		"teamName":  teamName,
		"opponent":  strings.TrimSpace(form.String("opponent")),
		"side":      form.String("side"),
		"result":    form.String("result"),
		"champions": draft,
		"notes":     strings.TrimSpace(form.String("notes")),
		"matchDate": form.String("matchDate"),
		"createdAt": t.now().UTC().Format(time.RFC3339),
	}

	matches := s.Array("matches")
	matches.Unshift(match)
	t.archive.Save(matches.Snapshot())
	t.logger.Info("match recorded", "id", match["id"], "team", teamName, "result", match["result"])

	t.resetForm(s)
	t.closeChampionPicker(s)
	return true
}

func (t *Tracker) removeMatch(s *reactive.Object, args ...any) any {
	id := matchKey(argAny(args, 0))
	kept := s.Array("matches").Filter(func(v any) bool {
		m, ok := v.(*reactive.Object)
		return !ok || matchKey(m.Get("id")) != id
	})
	s.Set("matches", kept)
	t.archive.Save(s.Array("matches").Snapshot())
	return nil
}

// clearMatches deletes every match. The first argument is the user's
// answer to the confirmation prompt; without it nothing happens.
func (t *Tracker) clearMatches(s *reactive.Object, args ...any) any {
	if s.Array("matches").Len() == 0 {
		return false
	}
	if confirmed, _ := argAny(args, 0).(bool); !confirmed {
		return false
	}
	s.Set("matches", []any{})
	t.archive.Save(nil)
	t.logger.Info("matches cleared")
	return true
}

func (t *Tracker) setStatsSort(s *reactive.Object, args ...any) any {
	key, err := ParseSortKey(argString(args, 0))
	if err != nil {
		t.logger.Debug("ignoring sort request", "error", err)
		return nil
	}
	next := statsSort(s).Toggle(key)
	o := s.Object("statsSort")
	o.Set("key", string(next.Key))
	o.Set("direction", string(next.Direction))
	return nil
}

// pickerSlot returns the slot the picker is open for.
func pickerSlot(s *reactive.Object) (team, lane string, ok bool) {
	ctx := s.Object("pickerContext")
	if ctx == nil {
		return "", "", false
	}
	return ctx.String("team"), ctx.String("lane"), true
}

// selectedChampionIDs returns the champions currently in the form's draft.
func selectedChampionIDs(s *reactive.Object) []string {
	return ChampionIDs(s.Object("matchForm").Object("champions").Snapshot())
}

// isChampionSelected reports whether id is used by a slot of the form other
// than the one the picker is open for.
func isChampionSelected(s *reactive.Object, id string) bool {
	if team, lane, ok := pickerSlot(s); ok {
		slots := s.Object("matchForm").Object("champions").Object(team)
		if slots != nil {
			if current, _ := slots.Get(lane).(string); current == id {
				return false
			}
		}
	}
	return slices.Contains(selectedChampionIDs(s), id)
}

// filteredChampions returns the roster narrowed by the picker search.
func (t *Tracker) filteredChampions(s *reactive.Object) roster.Roster {
	return t.roster.Search(s.String("championSearch"))
}

// findChampion returns the roster entry for id.
func (t *Tracker) findChampion(id string) (roster.Champion, bool) {
	if id == "" {
		return roster.Champion{}, false
	}
	return t.roster.Find(id)
}

// matches decodes the state's match list.
func matches(s *reactive.Object) []Match {
	return DecodeMatches(s.Array("matches").Snapshot())
}

func filters(s *reactive.Object) Filters {
	f := s.Object("filters")
	return Filters{
		Team:     f.String("team"),
		Opponent: f.String("opponent"),
		Side:     f.String("side"),
		Result:   f.String("result"),
	}
}

func statsSort(s *reactive.Object) StatsSort {
	o := s.Object("statsSort")
	return StatsSort{
		Key:       SortKey(o.String("key")),
		Direction: Direction(o.String("direction")),
	}
}

// Usage returns the champion usage of the state's matches in the state's
// sort order.
func (t *Tracker) Usage(s *reactive.Object) []Usage {
	usage := ChampionUsage(t.roster, matches(s))
	SortUsage(usage, statsSort(s))
	return usage
}

// matchKey gives ids the string form DecodeMatch produces; older records
// use numeric ids.
func matchKey(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func argAny(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func argString(args []any, i int) string {
	s, _ := argAny(args, i).(string)
	return s
}
