package customer

import (
	"github.com/rs/zerolog"
)

// --- Define types for handler "constructors" ---
// This allows us to pass dependencies from main.go

type (
	CommandHandlerConstructor  func(deps *Deps) CommandHandler
	DeepLinkHandlerConstructor func(deps *Deps) DeepLinkHandler
	StateHandlerConstructor    func(deps *Deps) StateHandler
	MenuHandlerConstructor     func(deps *Deps) MenuHandler
	CallbackHandlerConstructor func(deps *Deps) CallbackHandler
	TextHandlerConstructor     func(deps *Deps) TextHandler
)

// --- Create the global registries ---
var (
	commandRegistry  []CommandHandlerConstructor
	deepLinkRegistry []DeepLinkHandlerConstructor
	stateRegistry    []StateHandlerConstructor
	menuRegistry     []MenuHandlerConstructor
	callbackRegistry []CallbackHandlerConstructor
	textHandler      TextHandlerConstructor
)

// RegisterCommand is called by handlers in their init() function
func RegisterCommand(constructor CommandHandlerConstructor) {
	commandRegistry = append(commandRegistry, constructor)
}

func RegisterDeepLink(constructor DeepLinkHandlerConstructor) {
	deepLinkRegistry = append(deepLinkRegistry, constructor)
}

func RegisterState(constructor StateHandlerConstructor) {
	stateRegistry = append(stateRegistry, constructor)
}

func RegisterMenu(constructor MenuHandlerConstructor) {
	menuRegistry = append(menuRegistry, constructor)
}

// RegisterCallback is called by callback handlers in their init()
func RegisterCallback(constructor CallbackHandlerConstructor) {
	callbackRegistry = append(callbackRegistry, constructor)
}

// RegisterText sets the single fallback text handler.
func RegisterText(constructor TextHandlerConstructor) {
	textHandler = constructor
}

// RegisterAllHandlers is the single function called by main.go
// It builds all registered handlers and passes them to the router.
func RegisterAllHandlers(deps *Deps, router *CustomerRouter, baseLogger *zerolog.Logger) {
	log := baseLogger.With().Str("component", "customer_registry").Logger()

	for _, constructor := range commandRegistry {
		router.RegisterCommandHandler(constructor(deps))
	}
	for _, constructor := range deepLinkRegistry {
		router.RegisterDeepLinkHandler(constructor(deps))
	}
	for _, constructor := range stateRegistry {
		router.RegisterStateHandler(constructor(deps))
	}
	for _, constructor := range menuRegistry {
		router.RegisterMenuHandler(constructor(deps))
	}
	for _, constructor := range callbackRegistry {
		router.RegisterCallbackHandler(constructor(deps))
	}

	if textHandler != nil {
		router.SetTextHandler(textHandler(deps))
		log.Info().Msg("Registered fallback text handler")
	}

	log.Info().
		Int("commands", len(commandRegistry)).
		Int("deep_links", len(deepLinkRegistry)).
		Int("states", len(stateRegistry)).
		Int("menus", len(menuRegistry)).
		Int("callbacks", len(callbackRegistry)).
		Msg("All customer handlers registered")
}
