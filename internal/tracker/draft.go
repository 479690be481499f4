package tracker

// Lane is one draft position.
type Lane struct {
	Key   string
	Label string
}

// Team is one side of a draft.
type Team struct {
	Key   string
	Label string
}

// Lanes lists the draft positions in display order.
var Lanes = []Lane{
	{Key: "top", Label: "トップ"},
	{Key: "jungle", Label: "ジャングル"},
	{Key: "mid", Label: "ミッド"},
	{Key: "adc", Label: "ボット(ADC)"},
	{Key: "support", Label: "サポート"},
}

// Teams lists the draft teams in display order.
var Teams = []Team{
	{Key: "blue", Label: "ブルーチーム"},
	{Key: "red", Label: "レッドチーム"},
}

// TotalSlots is the number of champions in a complete draft.
var TotalSlots = len(Lanes) * len(Teams)

// LaneLabel returns the label of the lane key, or "".
func LaneLabel(key string) string {
	for _, l := range Lanes {
		if l.Key == key {
			return l.Label
		}
	}
	return ""
}

// TeamLabel returns the label of the team key, or "".
func TeamLabel(key string) string {
	for _, t := range Teams {
		if t.Key == key {
			return t.Label
		}
	}
	return ""
}

// Draft is a typed draft: team key to lane key to champion id. An empty id
// is an unfilled slot.
type Draft map[string]map[string]string

// ChampionIDs returns the filled slots in team then lane order.
func (d Draft) ChampionIDs() []string {
	var ids []string
	for _, t := range Teams {
		for _, l := range Lanes {
			if id := d[t.Key][l.Key]; id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// EmptyDraft returns a draft mapping with every slot of every team nil, in
// the shape stored in page state and storage.
func EmptyDraft() map[string]any {
	draft := make(map[string]any, len(Teams))
	for _, t := range Teams {
		lanes := make(map[string]any, len(Lanes))
		for _, l := range Lanes {
			lanes[l.Key] = nil
		}
		draft[t.Key] = lanes
	}
	return draft
}

// ChampionIDs returns the filled slots of an untyped draft in team then
// lane order. Missing teams, missing lanes and empty values are skipped.
func ChampionIDs(draft map[string]any) []string {
	var ids []string
	for _, t := range Teams {
		lanes, _ := draft[t.Key].(map[string]any)
		for _, l := range Lanes {
			if id, _ := lanes[l.Key].(string); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// NormalizeMatch returns a copy of a stored match with its champions in the
// current draft shape. Older records held a list of champion ids, either as
// champions or as selectedChampions; up to five of them fill the blue lanes
// in order. Object drafts are projected onto the full grid, so unknown
// teams and lanes are dropped and missing slots become nil. The
// selectedChampions field is removed. A nil match yields nil.
func NormalizeMatch(match map[string]any) map[string]any {
	if match == nil {
		return nil
	}
	out := make(map[string]any, len(match))
	for k, v := range match {
		out[k] = v
	}

	draft := EmptyDraft()
	switch champions := match["champions"].(type) {
	case nil, []any:
		source, ok := champions.([]any)
		if !ok {
			source, _ = match["selectedChampions"].([]any)
		}
		blue := draft["blue"].(map[string]any)
		for i, id := range source {
			if i == len(Lanes) {
				break
			}
			if s, ok := id.(string); ok && s != "" {
				blue[Lanes[i].Key] = s
			}
		}
	case map[string]any:
		for _, t := range Teams {
			from, _ := champions[t.Key].(map[string]any)
			to := draft[t.Key].(map[string]any)
			for _, l := range Lanes {
				if s, ok := from[l.Key].(string); ok && s != "" {
					to[l.Key] = s
				}
			}
		}
	}
	out["champions"] = draft
	delete(out, "selectedChampions")
	return out
}
