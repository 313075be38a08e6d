package reservation

import (
	"go.uber.org/fx"

	"github.com/campreserv/keepr/internal/reservation/service"
)

var Module = fx.Module("reservation.service",
	fx.Provide(service.NewService),
)
