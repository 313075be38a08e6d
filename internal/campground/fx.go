package campground

import (
	"go.uber.org/fx"

	"github.com/campreserv/keepr/internal/campground/service"
)

var Module = fx.Module("campground.service",
	fx.Provide(service.NewService),
)
