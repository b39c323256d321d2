package components

import (
	"museum-booking/internal/infra/gateway"
	"museum-booking/internal/pkg/config"
	"museum-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewSubmissionGateway,
			fx.As(new(commands.SubmissionGateway)),
		),
	),
)

func NewSubmissionGateway(cfg config.Config) *gateway.SubmissionClient {
	return gateway.NewSubmissionClient(cfg.Gateway)
}
