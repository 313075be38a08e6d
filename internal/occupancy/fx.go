package occupancy

import (
	"go.uber.org/fx"
)

var Module = fx.Module("occupancy",
	fx.Provide(NewStore),
)
