package fee

import (
	"go.uber.org/fx"

	"github.com/campreserv/keepr/internal/fee/service"
)

var Module = fx.Module("fee.service",
	fx.Provide(service.NewService),
)
