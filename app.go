package miroslava

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/miroslava-go/miroslava/core/handler"
	"github.com/miroslava-go/miroslava/core/response"
	"github.com/miroslava-go/miroslava/core/router"
	"github.com/miroslava-go/miroslava/core/static"
	"github.com/miroslava-go/miroslava/core/templates"
	"github.com/miroslava-go/miroslava/core/webserver"
)

// Config collects the application settings loaded from the environment.
// It embeds the server settings so a single config.Load call covers both.
type Config struct {
	Server        webserver.Config
	TemplateDir   string `env:"TEMPLATE_DIR" envDefault:"templates"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"static"`
	StaticURLPath string `env:"STATIC_URL_PATH" envDefault:"/static"`
}

// App ties the rule table, the execution-context machinery, and the web
// server together behind a Flask-like registration surface. The zero value
// is not usable; construct with New.
type App struct {
	name   string
	cfg    Config
	log    *slog.Logger
	table  *router.Table
	debug  bool
	banner bool
}

// Option configures an App during construction.
type Option func(*App)

// WithLogger sets the structured logger used by the app and its server.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithConfig replaces the default configuration, typically one populated
// by config.Load.
func WithConfig(cfg Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithDebug toggles debug mode: panic stack traces are logged and the
// startup banner says so.
func WithDebug(debug bool) Option {
	return func(a *App) { a.debug = debug }
}

// WithTemplateDir overrides the directory Render reads templates from.
func WithTemplateDir(dir string) Option {
	return func(a *App) {
		if dir != "" {
			a.cfg.TemplateDir = dir
		}
	}
}

// WithStaticDir overrides the directory static assets are served from.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		if dir != "" {
			a.cfg.StaticDir = dir
		}
	}
}

// WithStaticURLPath overrides the URL prefix static assets are served
// under. An empty prefix disables static serving.
func WithStaticURLPath(prefix string) Option {
	return func(a *App) { a.cfg.StaticURLPath = prefix }
}

// WithoutBanner suppresses the startup banner. Mostly useful in tests.
func WithoutBanner() Option {
	return func(a *App) { a.banner = false }
}

// New creates an application with the given name. The name shows up in
// the startup banner and identifies the app to views via CurrentApp.
func New(name string, opts ...Option) *App {
	a := &App{
		name: name,
		cfg: Config{
			Server:        webserver.DefaultConfig(),
			TemplateDir:   templates.DefaultDir,
			StaticDir:     "static",
			StaticURLPath: "/static",
		},
		log:    slog.Default(),
		table:  router.NewTable(),
		banner: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.debug = a.debug || a.cfg.Server.Debug
	return a
}

// Name returns the application name given to New.
func (a *App) Name() string { return a.name }

// Logger returns the app's structured logger.
func (a *App) Logger() *slog.Logger { return a.log }

// Route registers a view for a URL pattern. Methods default to GET;
// pass router.WithMethods to widen them. Registering the same pattern
// again with a nil view stacks it as an alias for the existing endpoint.
func (a *App) Route(pattern string, view handler.ViewFunc, opts ...router.RuleOption) (*router.Rule, error) {
	return a.table.Register(pattern, view, opts...)
}

// MustRoute is Route but panics on registration errors. Route tables are
// built at startup, so a bad pattern is a programming error.
func (a *App) MustRoute(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	if _, err := a.table.Register(pattern, view, opts...); err != nil {
		panic(fmt.Sprintf("miroslava: route %q: %v", pattern, err))
	}
}

// Get registers a view for GET requests only. The verb helpers pin the
// method set, overriding any WithMethods in opts; use Route for a custom
// set of methods.
func (a *App) Get(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	a.MustRoute(pattern, view, append(opts, router.WithMethods("GET"))...)
}

// Post registers a view for POST requests only; see Get.
func (a *App) Post(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	a.MustRoute(pattern, view, append(opts, router.WithMethods("POST"))...)
}

// Put registers a view for PUT requests only; see Get.
func (a *App) Put(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	a.MustRoute(pattern, view, append(opts, router.WithMethods("PUT"))...)
}

// Delete registers a view for DELETE requests only; see Get.
func (a *App) Delete(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	a.MustRoute(pattern, view, append(opts, router.WithMethods("DELETE"))...)
}

// Patch registers a view for PATCH requests only; see Get.
func (a *App) Patch(pattern string, view handler.ViewFunc, opts ...router.RuleOption) {
	a.MustRoute(pattern, view, append(opts, router.WithMethods("PATCH"))...)
}

// Render renders a template from the app's template directory. The name
// may be a string or a []string of candidates tried in order.
func (a *App) Render(name any, data map[string]any) (string, error) {
	return templates.Render(a.cfg.TemplateDir, name, data)
}

// Dispatcher builds the request dispatcher for the current rule table,
// with static file serving attached when a static URL prefix is set.
func (a *App) Dispatcher() *router.Dispatcher {
	opts := []router.DispatcherOption{}
	if a.cfg.StaticURLPath != "" {
		root, prefix := a.cfg.StaticDir, a.cfg.StaticURLPath
		opts = append(opts, router.WithStatic(func(path string) *response.Response {
			return static.Serve(root, prefix, path)
		}))
	}
	return router.NewDispatcher(a.table, opts...)
}

// Run starts the web server and blocks until ctx is canceled or the
// listener fails. An empty addr falls back to the configured host:port.
func (a *App) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.cfg.Server.Addr()
	}
	d := a.Dispatcher()
	srv := webserver.New(addr, a, d.Dispatch,
		webserver.WithLogger(a.log),
		webserver.WithDebug(a.debug),
	)
	if a.banner {
		a.printBanner(addr)
	}
	return srv.Start(ctx)
}

func (a *App) printBanner(addr string) {
	mode := "off"
	if a.debug {
		mode = "on"
	}
	url := "http://" + addr + "/"
	if strings.HasPrefix(addr, "0.0.0.0") {
		url = "http://127.0.0.1" + strings.TrimPrefix(addr, "0.0.0.0") + "/"
	}
	fmt.Printf(" * Serving miroslava app %s\n", color.CyanString("%q", a.name))
	fmt.Printf(" * Debug mode: %s\n", color.YellowString(mode))
	fmt.Printf(" * Running on %s (Press CTRL+C to quit)\n", color.GreenString(url))
}

// CurrentApp returns the application bound to the view's execution scope.
// It fails when the scope's app is not a miroslava App.
func CurrentApp(ctx *handler.Context) (*App, error) {
	v, err := ctx.App()
	if err != nil {
		return nil, err
	}
	app, ok := v.(*App)
	if !ok {
		return nil, ErrForeignApp
	}
	return app, nil
}
