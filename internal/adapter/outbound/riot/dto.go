package riot

import "github.com/riftbook/rift-social/internal/domain/model"

// Wire shapes of the provider API. Only the fields the domain models
// carry are decoded; everything else in the responses is ignored.

type accountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type summonerDTO struct {
	SummonerLevel int `json:"summonerLevel"`
	ProfileIconID int `json:"profileIconId"`
}

type leagueEntryDTO struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type masteryDTO struct {
	ChampionID   int64 `json:"championId"`
	Level        int   `json:"championLevel"`
	Points       int   `json:"championPoints"`
	LastPlayTime int64 `json:"lastPlayTime"`
}

func (d masteryDTO) toModel() model.ChampionMastery {
	return model.ChampionMastery{
		ChampionID:   d.ChampionID,
		Level:        d.Level,
		Points:       d.Points,
		LastPlayTime: d.LastPlayTime,
	}
}

type matchDTO struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info struct {
		QueueID      int                  `json:"queueId"`
		GameCreation int64                `json:"gameCreation"`
		GameDuration int64                `json:"gameDuration"`
		GameVersion  string               `json:"gameVersion"`
		Participants []matchParticipantDTO `json:"participants"`
	} `json:"info"`
}

type matchParticipantDTO struct {
	PUUID      string `json:"puuid"`
	RiotIDName string `json:"riotIdGameName"`
	RiotIDTag  string `json:"riotIdTagline"`
	ChampionID int    `json:"championId"`
	Kills      int    `json:"kills"`
	Deaths     int    `json:"deaths"`
	Assists    int    `json:"assists"`
	Win        bool   `json:"win"`
}

func (d matchDTO) toModel() *model.Match {
	participants := make([]model.MatchParticipant, 0, len(d.Info.Participants))
	for _, p := range d.Info.Participants {
		participants = append(participants, model.MatchParticipant{
			PUUID:      p.PUUID,
			RiotIDName: p.RiotIDName,
			RiotIDTag:  p.RiotIDTag,
			ChampionID: p.ChampionID,
			Kills:      p.Kills,
			Deaths:     p.Deaths,
			Assists:    p.Assists,
			Win:        p.Win,
		})
	}
	return &model.Match{
		ID:           d.Metadata.MatchID,
		QueueID:      d.Info.QueueID,
		GameCreation: d.Info.GameCreation,
		GameDuration: d.Info.GameDuration,
		GameVersion:  d.Info.GameVersion,
		Participants: participants,
	}
}

type timelineDTO struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info struct {
		FrameInterval int64 `json:"frameInterval"`
		Frames        []struct {
			Timestamp int64              `json:"timestamp"`
			Events    []timelineEventDTO `json:"events"`
		} `json:"frames"`
	} `json:"info"`
}

type timelineEventDTO struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId"`
	KillerID      int    `json:"killerId"`
	VictimID      int    `json:"victimId"`
}

func (d timelineDTO) toModel() *model.MatchTimeline {
	frames := make([]model.TimelineFrame, 0, len(d.Info.Frames))
	for _, f := range d.Info.Frames {
		events := make([]model.TimelineEvent, 0, len(f.Events))
		for _, e := range f.Events {
			events = append(events, model.TimelineEvent{
				Type:          e.Type,
				Timestamp:     e.Timestamp,
				ParticipantID: e.ParticipantID,
				KillerID:      e.KillerID,
				VictimID:      e.VictimID,
			})
		}
		frames = append(frames, model.TimelineFrame{
			Timestamp: f.Timestamp,
			Events:    events,
		})
	}
	return &model.MatchTimeline{
		MatchID:       d.Metadata.MatchID,
		FrameInterval: d.Info.FrameInterval,
		Frames:        frames,
	}
}
