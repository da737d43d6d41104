package model

// SidePlayer describes the chooser driving one color: the configured model
// name and the think time it has spent so far.
type SidePlayer struct {
	Model   string `json:"model"`
	Color   Color  `json:"color"`
	ThinkMs int64  `json:"thinkMs"`
}

type Players struct {
	White SidePlayer `json:"white"`
	Black SidePlayer `json:"black"`
}

// GameConfig is what a caller supplies when creating a game.
type GameConfig struct {
	WhiteModel string `json:"white_model"`
	BlackModel string `json:"black_model"`
	MaxTurns   int    `json:"max_turns"`
}
