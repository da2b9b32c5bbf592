package model

// Upstream payload types. These are the last-known-good values held by
// the freshness caches; they marshal to JSON for storage and transport.

// Profile is a player profile as reported by the upstream provider.
type Profile struct {
	PUUID         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	Region        string `json:"region"`
	SummonerLevel int    `json:"summonerLevel"`
	ProfileIconID int    `json:"profileIconId"`
	Tier          string `json:"tier,omitempty"`
	Rank          string `json:"rank,omitempty"`
	LeaguePoints  int    `json:"leaguePoints"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
}

// ChampionMastery is one champion mastery entry for a player.
type ChampionMastery struct {
	ChampionID   int64 `json:"championId"`
	Level        int   `json:"championLevel"`
	Points       int   `json:"championPoints"`
	LastPlayTime int64 `json:"lastPlayTime"`
}

// Match is the detail record of one finished match.
type Match struct {
	ID           string             `json:"matchId"`
	QueueID      int                `json:"queueId"`
	GameCreation int64              `json:"gameCreation"`
	GameDuration int64              `json:"gameDuration"`
	GameVersion  string             `json:"gameVersion"`
	Participants []MatchParticipant `json:"participants"`
}

// MatchParticipant is one player's line in a match detail.
type MatchParticipant struct {
	PUUID      string `json:"puuid"`
	RiotIDName string `json:"riotIdGameName"`
	RiotIDTag  string `json:"riotIdTagline"`
	ChampionID int    `json:"championId"`
	Kills      int    `json:"kills"`
	Deaths     int    `json:"deaths"`
	Assists    int    `json:"assists"`
	Win        bool   `json:"win"`
}

// MatchTimeline is the frame-by-frame timeline of one match.
type MatchTimeline struct {
	MatchID       string          `json:"matchId"`
	FrameInterval int64           `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is one timeline sample.
type TimelineFrame struct {
	Timestamp int64           `json:"timestamp"`
	Events    []TimelineEvent `json:"events"`
}

// TimelineEvent is one discrete event inside a frame.
type TimelineEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId,omitempty"`
	KillerID      int    `json:"killerId,omitempty"`
	VictimID      int    `json:"victimId,omitempty"`
}
