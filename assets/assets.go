package assets

import "embed"

var (
	//go:embed all:stages
	StageFS embed.FS
)

// DefaultStage is the arena used when no stage file is given.
const DefaultStage = "stages/arena.yaml"
