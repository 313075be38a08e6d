package availability

import (
	"go.uber.org/fx"

	"github.com/campreserv/keepr/internal/availability/service"
)

var Module = fx.Module("availability.service",
	fx.Provide(service.NewService),
)
