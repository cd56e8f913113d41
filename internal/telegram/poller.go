package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/dispatch"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/intent"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers  = 4
	queueSize       = 32
	handleTimeout   = 30 * time.Second
	longPollTimeout = 60
)

// Bot is the part of *tgbotapi.BotAPI the poller uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Dispatcher interface {
	Handle(ctx context.Context, a intent.Action) dispatch.Result
}

type Options struct {
	Workers int
	// Timeout is the long polling timeout in seconds.
	Timeout int
}

// Poller reads updates and hands them to the dispatcher. Updates of one user
// always land on the same worker, so a user's messages are handled in the
// order they arrived while different users proceed in parallel.
type Poller struct {
	bot        Bot
	dispatcher Dispatcher
	renderer   *Renderer
	workers    int
	timeout    int
	logger     logger.Logger
}

func NewPoller(bot Bot, dispatcher Dispatcher, renderer *Renderer, opts Options, logger logger.Logger) *Poller {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Timeout <= 0 {
		opts.Timeout = longPollTimeout
	}
	return &Poller{
		bot:        bot,
		dispatcher: dispatcher,
		renderer:   renderer,
		workers:    opts.Workers,
		timeout:    opts.Timeout,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled or the update channel closes. Updates
// already queued are still handled before Run returns.
func (p *Poller) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.timeout
	updates := p.bot.GetUpdatesChan(cfg)

	p.logger.Info("telegram poller started", logger.Int("workers", p.workers))

	queues := make([]chan Incoming, p.workers)
	g, _ := errgroup.WithContext(ctx)
	for i := range queues {
		q := make(chan Incoming, queueSize)
		queues[i] = q
		g.Go(func() error {
			for in := range q {
				p.handle(ctx, in)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			for _, q := range queues {
				close(q)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				p.bot.StopReceivingUpdates()
				p.logger.Info("telegram poller stopped")
				return nil
			case u, ok := <-updates:
				if !ok {
					return nil
				}
				in, ok := ParseUpdate(u)
				if !ok {
					continue
				}
				queues[shard(in.Action.Identity, len(queues))] <- in
			}
		}
	})

	return g.Wait()
}

func (p *Poller) handle(parent context.Context, in Incoming) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), handleTimeout)
	defer cancel()

	if in.CallbackID != "" {
		if _, err := p.bot.Request(tgbotapi.NewCallback(in.CallbackID, "")); err != nil {
			p.logger.Warn("failed to answer callback",
				logger.Int64("identity", in.Action.Identity),
				logger.String("error", err.Error()),
			)
		}
	}

	res := p.dispatcher.Handle(ctx, in.Action)
	for _, msg := range p.renderer.Render(in.ChatID, res) {
		if _, err := p.bot.Send(msg); err != nil {
			p.logger.Error("failed to send telegram reply",
				logger.Int64("chat_id", in.ChatID),
				logger.String("kind", string(res.Kind)),
				logger.String("error", err.Error()),
			)
		}
	}
}

func shard(identity int64, n int) int {
	return int(uint64(identity) % uint64(n))
}
