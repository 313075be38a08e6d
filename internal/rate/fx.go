package rate

import (
	"go.uber.org/fx"

	"github.com/campreserv/keepr/internal/rate/service"
)

var Module = fx.Module("rate.service",
	fx.Provide(service.NewService),
)
