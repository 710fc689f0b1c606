package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/melodia/internal/client/api"
	"github.com/dmitrijs2005/melodia/internal/client/config"
	"github.com/dmitrijs2005/melodia/internal/server/models"
)

// Backend is the subset of the API client the commands use.
type Backend interface {
	Register(ctx context.Context, name, email, password string) (*api.RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Me(ctx context.Context) (*models.PublicUser, error)
	ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error)
	AddFavorite(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error)
	Health(ctx context.Context) error
}

var ErrUsage = errors.New("usage")

const usage = `Usage: client [-a url] [-t token] [-c config.json] <command> [args]

Commands:
  register                      create an account (prompts for name, email, password)
  login                         obtain a token (prompts for email, password)
  me                            show the user behind the token
  list <userID>                 list favorites
  add <userID> <musicaID>       add a favorite
  remove <userID> <musicaID>    remove every matching favorite
  health                        check that the server is up`

type App struct {
	backend Backend
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) *App {
	return newApp(api.NewClient(c.ServerURL, c.Token, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(b Backend, in io.Reader, out io.Writer) *App {
	return &App{backend: b, reader: bufio.NewReader(in), out: out}
}

// Run executes a single command. ErrUsage is returned for unknown commands
// or wrong arguments, after printing the usage text.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "me":
		return a.me(ctx)
	case "list":
		if len(rest) != 1 {
			return a.usage()
		}
		return a.list(ctx, rest[0])
	case "add", "remove":
		if len(rest) != 2 {
			return a.usage()
		}
		musicID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("musica_id must be an integer: %w", err)
		}
		if cmd == "add" {
			return a.add(ctx, rest[0], musicID)
		}
		return a.remove(ctx, rest[0], musicID)
	case "health":
		return a.health(ctx)
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return a.usage()
	}
}

func (a *App) usage() error {
	fmt.Fprintln(a.out, usage)
	return ErrUsage
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) health(ctx context.Context) error {
	if err := a.backend.Health(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}
