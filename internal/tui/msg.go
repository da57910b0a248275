package tui

import "github.com/spotdemo4/tamil-insight/internal/api"

type MsgType int

const (
	MsgResult MsgType = iota
	MsgError
)

var msgName = map[MsgType]string{
	MsgResult: "result",
	MsgError:  "error",
}

func (mt MsgType) String() string {
	return msgName[mt]
}

// Msg reports the outcome of one analyze request.
type Msg struct {
	Type MsgType
	Text string
	Data *api.AnalysisResponse
}

// analyzeMsg fires when a loaded example is due to be analyzed.
type analyzeMsg struct{}
