package customer

import (
	"ShopBot/internal/bot/deeplink"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// CustomerRouter is the conversation dispatcher. It resolves exactly one
// handler for every inbound update.
type CustomerRouter struct {
	log      zerolog.Logger
	userRepo ports.UserRepository
	sessions ports.SessionStore
	bot      ports.BotClientPort

	commandHandlers  map[string]CommandHandler
	deepLinkHandlers map[deeplink.Family]DeepLinkHandler
	stateHandlers    map[domain.StateKind]StateHandler
	menuHandlers     map[i18n.Button]MenuHandler
	callbackHandlers map[callback.Kind]CallbackHandler
	textHandler      TextHandler
}

// NewCustomerRouter creates a router with no handlers.
func NewCustomerRouter(
	userRepo ports.UserRepository,
	sessions ports.SessionStore,
	botClient ports.BotClientPort,
	baseLogger *zerolog.Logger,
) *CustomerRouter {
	return &CustomerRouter{
		log:              baseLogger.With().Str("component", "customer_router").Logger(),
		userRepo:         userRepo,
		sessions:         sessions,
		bot:              botClient,
		commandHandlers:  make(map[string]CommandHandler),
		deepLinkHandlers: make(map[deeplink.Family]DeepLinkHandler),
		stateHandlers:    make(map[domain.StateKind]StateHandler),
		menuHandlers:     make(map[i18n.Button]MenuHandler),
		callbackHandlers: make(map[callback.Kind]CallbackHandler),
	}
}

func (r *CustomerRouter) RegisterCommandHandler(handler CommandHandler) {
	cmd := handler.Command()
	r.commandHandlers[cmd] = handler
	r.log.Debug().Str("command", cmd).Msg("Registered command handler")
}

func (r *CustomerRouter) RegisterDeepLinkHandler(handler DeepLinkHandler) {
	r.deepLinkHandlers[handler.Family()] = handler
	r.log.Debug().Stringer("family", handler.Family()).Msg("Registered deep-link handler")
}

func (r *CustomerRouter) RegisterStateHandler(handler StateHandler) {
	for _, kind := range handler.States() {
		r.stateHandlers[kind] = handler
		r.log.Debug().Stringer("state", kind).Msg("Registered state handler")
	}
}

func (r *CustomerRouter) RegisterMenuHandler(handler MenuHandler) {
	for _, b := range handler.Buttons() {
		r.menuHandlers[b] = handler
	}
}

func (r *CustomerRouter) RegisterCallbackHandler(handler CallbackHandler) {
	for _, kind := range handler.Kinds() {
		r.callbackHandlers[kind] = handler
		r.log.Debug().Stringer("kind", kind).Msg("Registered callback handler")
	}
}

// SetTextHandler registers the single fallback text handler.
func (r *CustomerRouter) SetTextHandler(handler TextHandler) {
	r.textHandler = handler
}

// HandleUpdate is the main entry point for a new update from Telegram.
// Updates of the same user are serialized through the session store lock.
func (r *CustomerRouter) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	// 1. Convert to our generic BotUpdate
	botUpdate, isSupported := r.parseUpdate(update)
	if !isSupported {
		r.log.Debug().Int("update_id", update.UpdateID).Msg("Ignoring unsupported update type")
		return
	}

	// 2. Add logger context
	ctxLogger := r.log.With().
		Int64("user_id", botUpdate.UserID).
		Int64("chat_id", botUpdate.ChatID).
		Logger()
	ctx = ctxLogger.WithContext(ctx)

	unlock := r.sessions.Lock(botUpdate.UserID)
	defer unlock()

	lang := domain.DefaultLanguage
	defer func() {
		if rec := recover(); rec != nil {
			ctxLogger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic while handling update")
			r.send(ctx, botUpdate.ChatID, i18n.T(lang, i18n.MsgGenericError), nil)
		}
	}()

	// 3. Get user ONCE at the start
	user, err := r.userRepo.GetByTelegramID(ctx, botUpdate.UserID)
	if err != nil {
		ctxLogger.Error().Err(err).Msg("Failed to get user for handling")
		if botUpdate.IsCallback() {
			r.answer(ctx, botUpdate, "", false)
		}
		r.send(ctx, botUpdate.ChatID, i18n.T(lang, i18n.MsgGenericError), nil)
		return
	}
	lang = user.Lang()

	// 4. Banned users get a refusal and nothing else
	if user != nil && user.IsBanned {
		ctxLogger.Info().Msg("Ignoring update from banned user")
		if botUpdate.IsCallback() {
			r.answer(ctx, botUpdate, i18n.T(lang, i18n.MsgBanned), true)
			return
		}
		r.send(ctx, botUpdate.ChatID, i18n.T(lang, i18n.MsgBanned), nil)
		return
	}

	req := &Request{Update: botUpdate, User: user}
	if botUpdate.IsCallback() {
		r.routeCallback(ctx, req)
		return
	}
	r.routeMessage(ctx, req)
}

func (r *CustomerRouter) routeMessage(ctx context.Context, req *Request) {
	log := zerolog.Ctx(ctx)
	upd := req.Update
	state := r.sessions.State(upd.UserID)

	// 1. Registration gate
	if req.User == nil && state == nil && upd.Command != "start" {
		r.sendRegisterPrompt(ctx, req)
		return
	}

	// 2. Commands and deep links
	if upd.Command != "" {
		if link, ok := deeplink.Parse(upd.Text); ok {
			if handler, ok := r.deepLinkHandlers[link.Family()]; ok {
				if req.User == nil {
					r.sendRegisterPrompt(ctx, req)
					return
				}
				r.run(ctx, req, "deeplink:"+link.Family().String(), func() error {
					return handler.Handle(ctx, req, link)
				})
				return
			}
		}
		if handler, ok := r.commandHandlers[upd.Command]; ok {
			if req.User == nil && !allowsGuests(handler) {
				r.sendRegisterPrompt(ctx, req)
				return
			}
			r.run(ctx, req, "command:"+upd.Command, func() error {
				return handler.Handle(ctx, req)
			})
			return
		}
	}

	// 3. In-flight wizard step
	if state != nil {
		handler, ok := r.stateHandlers[state.Kind()]
		if !ok {
			log.Warn().Stringer("state", state.Kind()).Msg("No handler for state, resetting it")
			r.sessions.ClearState(upd.UserID)
			if req.User == nil {
				r.sendRegisterPrompt(ctx, req)
				return
			}
			r.send(ctx, upd.ChatID, i18n.T(req.Lang(), i18n.MsgWelcomeBack), keyboards.Main(req.Lang()))
			return
		}
		r.run(ctx, req, "state:"+state.Kind().String(), func() error {
			return handler.Handle(ctx, req, state)
		})
		return
	}

	// 4. Fixed menu labels
	if button, ok := i18n.Match(upd.Text); ok {
		if handler, ok := r.menuHandlers[button]; ok {
			r.run(ctx, req, "menu", func() error {
				return handler.Handle(ctx, req, button)
			})
			return
		}
	}

	// 5. Dynamic labels, search and unknown input
	if r.textHandler != nil {
		r.run(ctx, req, "text", func() error {
			return r.textHandler.Handle(ctx, req)
		})
		return
	}

	log.Info().Str("text", upd.Text).Msg("Received unhandled message (no handler)")
}

func (r *CustomerRouter) routeCallback(ctx context.Context, req *Request) {
	log := zerolog.Ctx(ctx)
	upd := req.Update
	lang := req.Lang()

	// Every callback query is answered exactly once, even after a panic.
	defer func() {
		r.answer(ctx, upd, req.toast, req.alert)
	}()

	if req.User == nil {
		req.Toast(i18n.T(lang, i18n.MsgNotRegisteredCallback), true)
		return
	}

	action := callback.Parse(*upd.CallbackData)
	switch a := action.(type) {
	case callback.Unknown:
		log.Warn().Str("data", a.Raw).Msg("Unknown callback payload")
		req.Toast(i18n.T(lang, i18n.MsgActionUnsupported), false)
		return
	case callback.Malformed:
		log.Warn().Str("verb", a.Verb).Str("data", a.Raw).Msg("Malformed callback payload")
		req.Toast(i18n.T(lang, i18n.MsgInvalidFormat), true)
		return
	}

	handler, ok := r.callbackHandlers[action.Kind()]
	if !ok {
		log.Warn().Stringer("kind", action.Kind()).Msg("No callback handler registered")
		req.Toast(i18n.T(lang, i18n.MsgActionUnsupported), false)
		return
	}
	r.run(ctx, req, "callback:"+action.Kind().String(), func() error {
		return handler.Handle(ctx, req, action)
	})
}

// run invokes a handler and turns its error into a logged, generic reply.
func (r *CustomerRouter) run(ctx context.Context, req *Request, route string, fn func() error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("route", route).Msg("Routing update")
	if err := fn(); err != nil {
		log.Error().Err(err).Str("route", route).Msg("Handler failed")
		r.send(ctx, req.Update.ChatID, i18n.T(req.Lang(), i18n.MsgGenericError), nil)
	}
}

func (r *CustomerRouter) sendRegisterPrompt(ctx context.Context, req *Request) {
	r.send(ctx, req.Update.ChatID, i18n.T(req.Lang(), i18n.MsgRegisterPrompt), nil)
}

func (r *CustomerRouter) send(ctx context.Context, chatID int64, text string, markup *ports.ReplyMarkup) {
	if _, err := Send(ctx, r.bot, chatID, text, markup); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to send reply")
	}
}

func (r *CustomerRouter) answer(ctx context.Context, upd *ports.BotUpdate, text string, alert bool) {
	err := r.bot.AnswerCallbackQuery(ctx, ports.AnswerCallbackParams{
		CallbackQueryID: upd.CallbackQueryID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to answer callback query")
	}
}

func allowsGuests(handler CommandHandler) bool {
	g, ok := handler.(GuestCommand)
	return ok && g.AllowGuests()
}

// parseUpdate converts a tgbotapi.Update into our internal, simplified struct.
func (r *CustomerRouter) parseUpdate(update *tgbotapi.Update) (*ports.BotUpdate, bool) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
			return nil, false
		}
		data := cb.Data
		return &ports.BotUpdate{
			MessageID:       cb.Message.MessageID,
			ChatID:          cb.Message.Chat.ID,
			UserID:          cb.From.ID,
			FirstName:       cb.From.FirstName,
			CallbackQueryID: cb.ID,
			CallbackData:    &data,
		}, true
	}

	if update.Message != nil {
		msg := update.Message
		if msg.From == nil || msg.Chat == nil {
			return nil, false
		}

		var contactInfo *ports.ContactInfo
		if msg.Contact != nil {
			contactInfo = &ports.ContactInfo{
				PhoneNumber: msg.Contact.PhoneNumber,
				UserID:      msg.Contact.UserID,
			}
		}

		var locationInfo *ports.LocationInfo
		if msg.Location != nil {
			locationInfo = &ports.LocationInfo{
				Latitude:  msg.Location.Latitude,
				Longitude: msg.Location.Longitude,
			}
		}

		name := msg.From.FirstName
		if msg.From.LastName != "" {
			name += " " + msg.From.LastName
		}

		return &ports.BotUpdate{
			MessageID:   msg.MessageID,
			ChatID:      msg.Chat.ID,
			UserID:      msg.From.ID,
			FirstName:   name,
			Text:        msg.Text,
			Command:     msg.Command(),
			CommandArgs: msg.CommandArguments(),
			Contact:     contactInfo,
			Location:    locationInfo,
		}, true
	}

	return nil, false
}
