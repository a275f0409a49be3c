package fpl

// bootstrapResponse is the subset of bootstrap-static/ the service reads.
type bootstrapResponse struct {
	Elements     []elementResponse     `json:"elements"`
	Teams        []teamResponse        `json:"teams"`
	ElementTypes []elementTypeResponse `json:"element_types"`
}

type elementResponse struct {
	ID                    int    `json:"id"`
	WebName               string `json:"web_name"`
	Team                  int    `json:"team"`
	ElementType           int    `json:"element_type"`
	TotalPoints           int    `json:"total_points"`
	NowCost               int    `json:"now_cost"`
	ExpectedGoals         string `json:"expected_goals"`
	ExpectedAssists       string `json:"expected_assists"`
	ExpectedGoalsConceded string `json:"expected_goals_conceded"`
	GoalsScored           int    `json:"goals_scored"`
	Assists               int    `json:"assists"`
	Minutes               int    `json:"minutes"`
	SelectedByPercent     string `json:"selected_by_percent"`
	Form                  string `json:"form"`
}

type teamResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

type elementTypeResponse struct {
	ID                int    `json:"id"`
	SingularNameShort string `json:"singular_name_short"`
}

// fixtureResponse is one row of the league-wide fixtures/?future=1 list.
type fixtureResponse struct {
	ID              int    `json:"id"`
	Event           *int   `json:"event"`
	KickoffTime     string `json:"kickoff_time"`
	TeamH           int    `json:"team_h"`
	TeamA           int    `json:"team_a"`
	TeamHDifficulty int    `json:"team_h_difficulty"`
	TeamADifficulty int    `json:"team_a_difficulty"`
	Finished        bool   `json:"finished"`
}

// elementSummaryResponse is the payload of element-summary/{id}/.
type elementSummaryResponse struct {
	Fixtures []summaryFixtureResponse `json:"fixtures"`
	History  []summaryHistoryResponse `json:"history"`
}

type summaryFixtureResponse struct {
	ID          int    `json:"id"`
	Event       *int   `json:"event"`
	KickoffTime string `json:"kickoff_time"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	IsHome      bool   `json:"is_home"`
	Difficulty  int    `json:"difficulty"`
}

type summaryHistoryResponse struct {
	Round           int    `json:"round"`
	KickoffTime     string `json:"kickoff_time"`
	OpponentTeam    int    `json:"opponent_team"`
	WasHome         bool   `json:"was_home"`
	TotalPoints     int    `json:"total_points"`
	Minutes         int    `json:"minutes"`
	GoalsScored     int    `json:"goals_scored"`
	Assists         int    `json:"assists"`
	ExpectedGoals   string `json:"expected_goals"`
	ExpectedAssists string `json:"expected_assists"`
	Value           int    `json:"value"`
}
