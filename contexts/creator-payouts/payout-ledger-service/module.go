package payoutledgerservice

import (
	"log/slog"

	httpadapter "payline/contexts/creator-payouts/payout-ledger-service/adapters/http"
	"payline/contexts/creator-payouts/payout-ledger-service/adapters/memory"
	"payline/contexts/creator-payouts/payout-ledger-service/application/commands"
	"payline/contexts/creator-payouts/payout-ledger-service/application/queries"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository    ports.Repository
	Idempotency   ports.IdempotencyStore
	Outbox        ports.OutboxWriter
	ContentSource ports.ContentSource
	Schedule      entities.RankSchedule
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	schedule := deps.Schedule
	if len(schedule.Specs()) == 0 {
		schedule = entities.DefaultRankSchedule()
	}

	refreshCreator := commands.RefreshCreatorUseCase{
		Repository: deps.Repository,
		Outbox:     deps.Outbox,
		Schedule:   schedule,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	submitVideo := commands.SubmitVideoUseCase{
		Repository:     deps.Repository,
		Idempotency:    deps.Idempotency,
		ContentSource:  deps.ContentSource,
		RefreshCreator: refreshCreator,
		Schedule:       schedule,
		Clock:          deps.Clock,
		Logger:         deps.Logger,
	}
	updateViews := commands.UpdateViewsUseCase{
		Repository:     deps.Repository,
		RefreshCreator: refreshCreator,
		Schedule:       schedule,
		Clock:          deps.Clock,
		Logger:         deps.Logger,
	}
	markPaid := commands.MarkPaidUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	rejectVideo := commands.RejectVideoUseCase{
		Repository:     deps.Repository,
		RefreshCreator: refreshCreator,
		Logger:         deps.Logger,
	}
	deleteVideo := commands.DeleteVideoUseCase{
		Repository:     deps.Repository,
		RefreshCreator: refreshCreator,
		Logger:         deps.Logger,
	}
	linkIdentity := commands.LinkIdentityUseCase{
		Repository: deps.Repository,
		Schedule:   schedule,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	videoQueries := queries.VideoQueriesUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	creatorQueries := queries.CreatorQueriesUseCase{
		Repository: deps.Repository,
		Schedule:   schedule,
		Logger:     deps.Logger,
	}
	rateCard := queries.RateCardUseCase{
		Schedule: schedule,
		Logger:   deps.Logger,
	}
	reports := queries.ReportsUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SubmitVideo:    submitVideo,
			UpdateViews:    updateViews,
			MarkPaid:       markPaid,
			RejectVideo:    rejectVideo,
			DeleteVideo:    deleteVideo,
			LinkIdentity:   linkIdentity,
			RefreshCreator: refreshCreator,
			Videos:         videoQueries,
			Creators:       creatorQueries,
			RateCard:       rateCard,
			Reports:        reports,
			Clock:          deps.Clock,
			Logger:         deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.VideoRecord, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:    store,
		Idempotency:   store,
		Outbox:        store,
		ContentSource: store,
		Schedule:      entities.DefaultRankSchedule(),
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
