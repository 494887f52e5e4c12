package handlers

import (
	"time"

	"scrambledstates/internal/game"
	"scrambledstates/internal/models"
)

// The JSON shapes returned by the API. Profiles never expose the PIN
// hash; state cards expose only what the client renders.

type profileView struct {
	ID           int64             `json:"id"`
	Username     string            `json:"username"`
	Avatar       string            `json:"avatar"`
	TotalScore   int               `json:"totalScore"`
	GamesPlayed  int               `json:"gamesPlayed"`
	HighestScore int               `json:"highestScore"`
	LastPlayed   time.Time         `json:"lastPlayed"`
	HasPIN       bool              `json:"hasPin"`
	History      []historyView     `json:"history,omitempty"`
	Badges       map[string]string `json:"badges,omitempty"`
}

type historyView struct {
	Mode     string    `json:"mode"`
	Score    int       `json:"score"`
	Streak   int       `json:"streak"`
	PlayedAt time.Time `json:"playedAt"`
}

func newProfileView(p *models.Profile) profileView {
	view := profileView{
		ID:           p.ID,
		Username:     p.Username,
		Avatar:       p.Avatar,
		TotalScore:   p.TotalScore,
		GamesPlayed:  p.GamesPlayed,
		HighestScore: p.HighestScore,
		LastPlayed:   p.LastPlayed,
		HasPIN:       p.PinHash != "",
	}
	for _, e := range p.History {
		view.History = append(view.History, historyView{
			Mode:     e.Mode.ID(),
			Score:    e.Score,
			Streak:   e.Streak,
			PlayedAt: e.PlayedAt,
		})
	}
	if len(p.Badges) > 0 {
		view.Badges = make(map[string]string, len(p.Badges))
		for mode, tier := range p.Badges {
			view.Badges[mode.ID()] = tier.String()
		}
	}
	return view
}

type cardView struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Capital  string `json:"capital"`
	Region   string `json:"region"`
	Found    bool   `json:"found"`
}

type gameView struct {
	ID            string     `json:"id"`
	Mode          string     `json:"mode"`
	Challenge     string     `json:"challenge"`
	Hand          []cardView `json:"hand"`
	Score         int        `json:"score"`
	SessionScore  int        `json:"sessionScore"`
	Streak        int        `json:"streak"`
	TimeLeft      int        `json:"timeLeft,omitempty"`
	HintAvailable bool       `json:"hintAvailable"`
	MultiAnswer   bool       `json:"multiAnswer"`
	Ended         bool       `json:"ended"`
}

func newGameView(snap game.Snapshot) gameView {
	view := gameView{
		ID:            snap.ID,
		Mode:          snap.Mode.ID(),
		Challenge:     snap.Challenge,
		Score:         snap.Score,
		SessionScore:  snap.SessionScore,
		Streak:        snap.Streak,
		TimeLeft:      snap.TimeLeft,
		HintAvailable: snap.HintAvailable,
		MultiAnswer:   snap.MultiAnswer,
		Ended:         snap.Ended,
	}

	found := make(map[string]bool, len(snap.Confirmed))
	for _, name := range snap.Confirmed {
		found[name] = true
	}
	for _, card := range snap.Hand {
		view.Hand = append(view.Hand, cardView{
			Name:     card.Name,
			Nickname: card.Nickname,
			Capital:  card.Capital,
			Region:   card.Region,
			Found:    found[card.Name],
		})
	}
	return view
}

type slapView struct {
	Correct       bool     `json:"correct"`
	AlreadyFound  bool     `json:"alreadyFound"`
	Points        int      `json:"points"`
	Streak        int      `json:"streak"`
	Feedback      string   `json:"feedback"`
	Badge         string   `json:"badge,omitempty"`
	RoundComplete bool     `json:"roundComplete"`
	FoundCount    int      `json:"foundCount"`
	Game          gameView `json:"game"`
}

func newSlapView(res game.SlapResult, snap game.Snapshot) slapView {
	view := slapView{
		Correct:       res.Correct,
		AlreadyFound:  res.AlreadyFound,
		Points:        res.Points,
		Streak:        res.Streak,
		Feedback:      res.Feedback,
		RoundComplete: res.RoundComplete,
		FoundCount:    res.FoundCount,
		Game:          newGameView(snap),
	}
	if res.Badge != models.BadgeNone {
		view.Badge = res.Badge.String()
	}
	return view
}

type summaryView struct {
	Mode       string `json:"mode"`
	Score      int    `json:"score"`
	TotalScore int    `json:"totalScore"`
	Streak     int    `json:"streak"`
}

func newSummaryView(s game.Summary) summaryView {
	return summaryView{
		Mode:       s.Mode.ID(),
		Score:      s.Score,
		TotalScore: s.TotalScore,
		Streak:     s.Streak,
	}
}

type modeView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func allModeViews() []modeView {
	var views []modeView
	for _, m := range models.AllGameModes() {
		views = append(views, modeView{
			ID:          m.ID(),
			Title:       m.Title(),
			Description: m.Description(),
		})
	}
	return views
}
