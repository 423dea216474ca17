package scenes

import (
	"github.com/decker502/deadshelf/pkg/game"
)

// Scene 场景接口别名，所有场景都实现 game.Scene
type Scene = game.Scene
