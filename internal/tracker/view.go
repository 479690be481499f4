package tracker

import (
	"fmt"
	"strings"

	"github.com/vango-dev/teamfight/internal/tracker/roster"
	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/reactive"
	. "github.com/vango-dev/teamfight/pkg/vdom"
)

// Render builds the page for the current state.
func (t *Tracker) Render(s *reactive.Object) *VNode {
	all := matches(s)
	shown := FilterMatches(all, filters(s))

	return Group(
		Header(
			H1("LoL Teamfight Manager"),
			P(Class("subtitle"), "試合結果とチャンピオンの使用状況をまとめて管理できます。"),
		),
		Main(
			t.renderForm(s, all),
			t.renderStats(s, all),
			t.renderMatches(s, all, shown),
		),
		When(s.Bool("showChampionPicker"), func() *VNode { return t.renderPicker(s) }),
	)
}

func (t *Tracker) renderForm(s *reactive.Object, all []Match) *VNode {
	form := s.Object("matchForm")
	side, result := form.String("side"), form.String("result")

	return Section(Class("panel form-panel"),
		Div(Class("section-title"),
			H2("試合を登録"),
			Div(Class("tag-list"),
				Span(Class("tag"), fmt.Sprintf("登録試合数: %d", len(all))),
				Span(Class("tag"), fmt.Sprintf("チャンピオン選択 %d/%d", len(selectedChampionIDs(s)), TotalSlots)),
			),
		),
		Form(Class("form-grid"),
			OnSubmit(func(ev *dom.Event) {
				ev.PreventDefault()
				t.invoke(s, "submitMatch")
			}),
			Div(
				Label(For("match-date"), "日付"),
				Input(ID("match-date"), Type("date"), Value(form.String("matchDate")),
					OnInput(bindValue(form, "matchDate"))),
			),
			Div(
				Label(For("team-name"), "使用チーム"),
				Input(ID("team-name"), Type("text"), Value(form.String("teamName")),
					Placeholder("例: T1"), Props{"list": "team-options"},
					OnInput(bindValue(form, "teamName"))),
			),
			Div(
				Label(For("opponent-name"), "対戦相手 (任意)"),
				Input(ID("opponent-name"), Type("text"), Value(form.String("opponent")),
					Placeholder("例: Gen.G"), Props{"list": "team-options"},
					OnInput(bindValue(form, "opponent"))),
			),
			H("datalist", Props{"id": "team-options"},
				Range(TeamOptions(all), func(name string, _ int) *VNode {
					return Option(Value(name))
				}),
			),
			Div(
				Label("サイド"),
				Div(Class("radio-group"),
					pill(side == "blue", "ブルーサイド", t.action(s, "setSide", "blue")),
					pill(side == "red", "レッドサイド", t.action(s, "setSide", "red")),
				),
			),
			Div(
				Label("結果"),
				Div(Class("result-group"),
					pill(result == "win", "勝利", t.action(s, "setResult", "win")),
					pill(result == "loss", "敗北", t.action(s, "setResult", "loss")),
				),
			),
			Div(Class("lane-selection"),
				Range(Teams, func(team Team, _ int) *VNode { return t.renderTeamLanes(s, team) }),
			),
			Div(
				Label(For("match-notes"), "メモ"),
				Textarea(ID("match-notes"), Value(form.String("notes")),
					Placeholder("試合のポイントや構成の意図など"),
					OnInput(bindValue(form, "notes"))),
			),
			If(s.String("formError") != "", Div(Class("error-message"), s.String("formError"))),
			Div(Class("form-actions"),
				Button(Type("submit"), Class("primary-btn"), "試合を登録"),
				Button(Type("button"), Class("secondary-btn"), OnClick(t.action(s, "resetForm")), "リセット"),
			),
		),
	)
}

func (t *Tracker) renderTeamLanes(s *reactive.Object, team Team) *VNode {
	slots := s.Object("matchForm").Object("champions").Object(team.Key)

	return Div(Class("team-column", team.Key),
		H3(team.Label),
		Range(Lanes, func(lane Lane, _ int) *VNode {
			id, _ := slots.Get(lane.Key).(string)
			champion, ok := t.findChampion(id)

			var selected *VNode
			if ok {
				selected = Div(Class("selected-champion"),
					Img(Src(champion.Image), Alt(champion.Name)),
					Div(Class("details"),
						Span(Class("name"), champion.Name),
						If(champion.Role != "", Span(Class("role"), champion.Role)),
					),
				)
			} else {
				selected = Div(Class("selected-champion empty"), "未選択")
			}

			label := "選択する"
			if ok {
				label = "変更する"
			}
			return Div(Class("lane-slot"),
				Div(Class("slot-header"),
					Span(Class("lane-name"), lane.Label),
					If(ok, Button(Type("button"), Class("secondary-btn compact"),
						OnClick(t.action(s, "clearChampionSlot", team.Key, lane.Key)), "クリア")),
				),
				selected,
				Button(Type("button"), Class("primary-btn lane-action"),
					OnClick(t.action(s, "openChampionPicker", team.Key, lane.Key)), label),
			)
		}),
	)
}

func (t *Tracker) renderStats(s *reactive.Object, all []Match) *VNode {
	order := statsSort(s)
	wins, losses := CountResults(all)

	return Section(Class("panel stats-panel"),
		Div(Class("section-title"),
			H2("チャンピオン使用状況"),
			Div(Class("actions"),
				t.sortButton(s, order, SortTotal, "合計"),
				t.sortButton(s, order, SortWins, "勝利"),
				t.sortButton(s, order, SortLosses, "敗北"),
			),
		),
		Div(Class("champion-usage-meta"),
			Span(Class("tag"), fmt.Sprintf("登録試合 %d", len(all))),
			Span(Class("tag"), fmt.Sprintf("勝利 %d", wins)),
			Span(Class("tag"), fmt.Sprintf("敗北 %d", losses)),
		),
		t.renderStatsTable(s),
	)
}

func (t *Tracker) sortButton(s *reactive.Object, order StatsSort, key SortKey, label string) *VNode {
	active := order.Key == key
	if active {
		if order.Direction == Desc {
			label += "↓"
		} else {
			label += "↑"
		}
	}
	return Button(Type("button"),
		Classes("soft-btn", map[string]bool{"active": active}),
		OnClick(t.action(s, "setStatsSort", string(key))),
		label,
	)
}

func (t *Tracker) renderStatsTable(s *reactive.Object) *VNode {
	usage := t.Usage(s)
	if len(usage) == 0 {
		return Div(Class("empty-state"), "まだ試合が登録されていません。")
	}

	return Table(Class("stats-table"),
		Thead(Tr(
			Th(Scope("col"), "チャンピオン"),
			Th(Scope("col"), "合計"),
			Th(Scope("col"), "勝利"),
			Th(Scope("col"), "敗北"),
			Th(Scope("col"), "勝率"),
		)),
		Tbody(Range(usage, func(u Usage, _ int) *VNode {
			return Tr(
				Td(Div(Class("stats-champion"),
					If(u.Champion.Image != "", Img(Src(u.Champion.Image), Alt(u.Champion.Name))),
					Span(u.Champion.Name),
				)),
				Td(u.Total),
				Td(u.Wins),
				Td(u.Losses),
				Td(fmt.Sprintf("%.1f%%", u.WinRate())),
			)
		})),
	)
}

func (t *Tracker) renderMatches(s *reactive.Object, all, shown []Match) *VNode {
	f := s.Object("filters")

	var list *VNode
	if len(shown) == 0 {
		list = Div(Class("empty-state"), "条件に一致する試合がありません。")
	} else {
		list = Div(Class("matches-list"),
			Range(shown, func(m Match, _ int) *VNode { return t.renderMatchCard(s, m) }),
		)
	}

	return Section(Class("panel matches-panel"),
		Div(Class("section-title"),
			H2("登録済みの試合"),
			Div(Class("actions"),
				Button(Type("button"), Class("secondary-btn"),
					AttrIf(len(all) > 0, Data("confirm", msgConfirmClear)),
					OnClick(func(ev *dom.Event) { t.invoke(s, "clearMatches", ev.Confirm) }),
					"全て削除"),
			),
		),
		Div(Class("filters"),
			Input(Type("text"), Value(f.String("team")), Placeholder("チーム名で絞り込み"),
				OnInput(bindValue(f, "team"))),
			Input(Type("text"), Value(f.String("opponent")), Placeholder("対戦相手で絞り込み"),
				OnInput(bindValue(f, "opponent"))),
			Select(Value(f.String("side")), OnChange(bindValue(f, "side")),
				Option(Value("all"), "サイド (すべて)"),
				Option(Value("blue"), "ブルーサイド"),
				Option(Value("red"), "レッドサイド"),
			),
			Select(Value(f.String("result")), OnChange(bindValue(f, "result")),
				Option(Value("all"), "結果 (すべて)"),
				Option(Value("win"), "勝利"),
				Option(Value("loss"), "敗北"),
			),
		),
		list,
	)
}

func (t *Tracker) renderMatchCard(s *reactive.Object, m Match) *VNode {
	var badges []roster.Champion
	for _, id := range m.Champions.ChampionIDs() {
		if c, ok := t.findChampion(id); ok {
			badges = append(badges, c)
		}
	}

	resultClass, resultLabel := "loss", "LOSS"
	if m.Won() {
		resultClass, resultLabel = "win", "WIN"
	}
	sideClass := "red"
	if m.Side == "blue" {
		sideClass = "blue"
	}
	teamName := m.TeamName
	if teamName == "" {
		teamName = "未設定"
	}

	var avatars *VNode
	if len(badges) > 0 {
		avatars = Div(Class("champion-avatars"),
			Range(badges, func(c roster.Champion, _ int) *VNode {
				return Img(Src(c.Image), Alt(c.Name), TitleAttr(c.Name))
			}),
		)
	} else {
		avatars = Div(Class("helper-text"), "チャンピオンは登録されていません。")
	}

	return Article(Class("match-card"), Data("match-id", m.ID),
		Div(Class("match-header"),
			Div(Div(Class("match-title"),
				Strong(teamName),
				If(m.Opponent != "", Span(" vs "+m.Opponent)),
			)),
			Button(Type("button"), Class("danger-btn"),
				OnClick(t.action(s, "removeMatch", m.ID)), "削除"),
		),
		Div(Class("match-meta"),
			Span(Class("badge", resultClass), resultLabel),
			Span(Class("badge", sideClass), strings.ToUpper(m.Side)),
			Span(FormatDateLabel(m.MatchDate)),
			If(m.Opponent != "", Span("vs "+m.Opponent)),
		),
		avatars,
		Div(Class("match-draft"),
			Range(Teams, func(team Team, _ int) *VNode { return t.renderMatchTeam(m, team) }),
		),
		If(m.Notes != "", Div(Class("helper-text"), "メモ: "+m.Notes)),
	)
}

func (t *Tracker) renderMatchTeam(m Match, team Team) *VNode {
	lanes := m.Champions[team.Key]
	return Div(Class("team-draft", team.Key),
		H3(team.Label),
		Range(Lanes, func(lane Lane, _ int) *VNode {
			var cell *VNode
			if c, ok := t.findChampion(lanes[lane.Key]); ok {
				cell = Div(Class("lane-champion"),
					Img(Src(c.Image), Alt(c.Name), TitleAttr(c.Name)),
					Span(c.Name),
				)
			} else {
				cell = Span(Class("lane-champion empty"), "未登録")
			}
			return Div(Class("lane-row"),
				Span(Class("lane-label"), lane.Label),
				cell,
			)
		}),
	)
}

func (t *Tracker) renderPicker(s *reactive.Object) *VNode {
	team, lane, hasSlot := pickerSlot(s)
	champions := t.filteredChampions(s)

	var grid *VNode
	if len(champions) == 0 {
		grid = Div(Class("empty-state"), "該当するチャンピオンが見つかりません。")
	} else {
		grid = Div(Class("champion-grid"),
			Range(champions, func(c roster.Champion, _ int) *VNode {
				var choose *VNode
				if isChampionSelected(s, c.ID) {
					choose = Button(Type("button"), Class("secondary-btn"), Disabled(), "選択済み")
				} else {
					choose = Button(Type("button"), Class("primary-btn"),
						OnClick(t.action(s, "assignChampionToContext", c.ID)), "追加")
				}
				return Div(Class("champion-card"), Data("champion", c.ID),
					Img(Src(c.Image), Alt(c.Name)),
					Div(Class("info"),
						Div(Class("name"), c.Name),
						Div(Class("role"), c.Role),
					),
					choose,
				)
			}),
		)
	}

	return Div(Class("modal-backdrop"),
		Div(Class("modal-panel"),
			Div(Class("section-title modal-header"),
				H2("チャンピオンを選択"),
				Div(Class("modal-header-actions"),
					If(hasSlot, Span(Class("tag"), TeamLabel(team)+" - "+LaneLabel(lane))),
					Button(Type("button"), Class("secondary-btn"),
						OnClick(t.action(s, "closeChampionPicker")), "閉じる"),
				),
			),
			Div(
				Label(For("champion-search"), "チャンピオン検索"),
				Input(ID("champion-search"), Type("text"), Value(s.String("championSearch")),
					Placeholder("チャンピオン名やロールを検索"),
					OnInput(bindValue(s, "championSearch"))),
			),
			If(s.String("pickerError") != "", Div(Class("error-message"), s.String("pickerError"))),
			grid,
		),
	)
}

func pill(active bool, label string, onClick func()) *VNode {
	return Button(Type("button"),
		Classes("radio-pill", map[string]bool{"active": active}),
		OnClick(onClick),
		label,
	)
}

// bindValue returns an input handler storing the event's value under key.
func bindValue(o *reactive.Object, key string) func(*dom.Event) {
	return func(ev *dom.Event) {
		o.Set(key, ev.Value)
	}
}

// action returns a handler invoking the state method name with args.
func (t *Tracker) action(s *reactive.Object, name string, args ...any) func() {
	return func() { t.invoke(s, name, args...) }
}

func (t *Tracker) invoke(s *reactive.Object, name string, args ...any) {
	if _, err := s.Call(name, args...); err != nil {
		t.logger.Error("state action failed", "action", name, "error", err)
	}
}
